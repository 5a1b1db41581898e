package simhost

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// Settings is the host's settings store. Every Set that changes a value
// emits a ConfigChanged event on the bus.
type Settings struct {
	bus    *Bus
	values map[string]map[string]string
}

var _ hostapi.ConfigStore = (*Settings)(nil)

// settingsFile is the on-disk YAML layout:
//
//	groups:
//	  DefaultMinimapZoom:
//	    zoomLevel: Zoom500
type settingsFile struct {
	Groups map[string]map[string]string `yaml:"groups"`
}

// NewSettings returns an empty store publishing changes on bus.
func NewSettings(bus *Bus) *Settings {
	return &Settings{bus: bus, values: make(map[string]map[string]string)}
}

// LoadSettings reads a YAML settings profile. Loading does not emit events.
func LoadSettings(path string, bus *Bus) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return ParseSettings(data, bus)
}

// ParseSettings is LoadSettings over an in-memory document.
func ParseSettings(data []byte, bus *Bus) (*Settings, error) {
	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s := NewSettings(bus)
	for group, kv := range file.Groups {
		for key, value := range kv {
			s.put(group, key, value)
		}
	}
	return s, nil
}

func (s *Settings) GetConfiguration(group, key string) (string, bool) {
	v, ok := s.values[group][key]
	return v, ok
}

// SetDefault stores value only if the key has none yet. No event is emitted.
func (s *Settings) SetDefault(group, key, value string) {
	if _, ok := s.GetConfiguration(group, key); !ok {
		s.put(group, key, value)
	}
}

// Set stores value and notifies subscribers if it changed.
func (s *Settings) Set(group, key, value string) {
	if old, ok := s.GetConfiguration(group, key); ok && old == value {
		return
	}
	s.put(group, key, value)
	if s.bus != nil {
		s.bus.ConfigChanged(hostapi.ConfigChanged{Group: group, Key: key, NewValue: value})
	}
}

// Marshal renders the store in the settings file layout.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(settingsFile{Groups: s.values})
}

func (s *Settings) put(group, key, value string) {
	kv, ok := s.values[group]
	if !ok {
		kv = make(map[string]string)
		s.values[group] = kv
	}
	kv[key] = value
}
