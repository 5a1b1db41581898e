package main

import (
	"github.com/rs/zerolog/log"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/defaultzoom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

func registerAll(host hostapi.Host) (*defaultzoom.Plugin, error) {
	plugin, err := defaultzoom.Register(host)
	if err != nil {
		return nil, err
	}

	log.Info().
		Msg("All plugin handlers registered successfully")
	return plugin, nil
}
