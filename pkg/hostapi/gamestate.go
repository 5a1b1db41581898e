package hostapi

import (
	"fmt"
	"strings"
)

// GameState is the client's lifecycle state.
type GameState int

const (
	GameStateUnknown GameState = iota
	GameStateStarting
	GameStateLoginScreen
	GameStateLoggingIn
	GameStateLoading
	GameStateLoggedIn
	GameStateConnectionLost
	GameStateHopping
)

var gameStateNames = map[GameState]string{
	GameStateUnknown:        "UNKNOWN",
	GameStateStarting:       "STARTING",
	GameStateLoginScreen:    "LOGIN_SCREEN",
	GameStateLoggingIn:      "LOGGING_IN",
	GameStateLoading:        "LOADING",
	GameStateLoggedIn:       "LOGGED_IN",
	GameStateConnectionLost: "CONNECTION_LOST",
	GameStateHopping:        "HOPPING",
}

func (s GameState) String() string {
	if name, ok := gameStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// ParseGameState accepts the upper snake case name, case-insensitively.
func ParseGameState(s string) (GameState, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for state, name := range gameStateNames {
		if name == want {
			return state, nil
		}
	}
	return GameStateUnknown, fmt.Errorf("unknown game state %q", s)
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameState) UnmarshalText(text []byte) error {
	parsed, err := ParseGameState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
