package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/defaultzoom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/simhost"
)

func main() {
	logFile, err := initLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	defer logFile.Close()

	log.Info().Str("version", Version).Msg("Default Minimap Zoom Service")

	if len(os.Args) < 2 {
		log.Fatal().Msg("Usage: service <script.json> [settings.yaml]")
	}

	script, err := simhost.LoadScript(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("path", os.Args[1]).Msg("Failed to load session script")
	}

	host := simhost.New()
	if len(os.Args) > 2 {
		settings, err := simhost.LoadSettings(os.Args[2], host.Bus)
		if err != nil {
			log.Fatal().Err(err).Str("path", os.Args[2]).Msg("Failed to load settings")
		}
		host.WithSettings(settings)
	}
	for _, item := range defaultzoom.ConfigItems {
		host.Settings.SetDefault(defaultzoom.ConfigGroup, item.Key, item.Default)
	}

	plugin, err := registerAll(host)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register plugin")
	}
	log.Info().Str("script", script.Name).Int("steps", len(script.Steps)).Msg("Replaying session")

	report, err := simhost.Replay(host, script)
	if err != nil {
		log.Error().Err(err).Msg("Replay aborted")
	}

	plugin.ShutDown()
	log.Info().
		Int("steps", report.Steps).
		Int("zoom_applied", report.ZoomApplied).
		Float64("final_zoom", report.FinalZoom).
		Int("consumed_clicks", report.ConsumedClicks).
		Int("passed_clicks", report.PassedClicks).
		Strs("failures", report.Failures).
		Msg("Session finished")

	if err != nil || len(report.Failures) > 0 {
		os.Exit(1)
	}
}
