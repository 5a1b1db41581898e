package defaultzoom

import "github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"

// Register creates the plugin for host and starts it.
func Register(host hostapi.Host) (*Plugin, error) {
	p, err := New(host)
	if err != nil {
		return nil, err
	}
	if err := p.StartUp(); err != nil {
		return nil, err
	}
	return p, nil
}
