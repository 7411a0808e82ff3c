package valueobjects

import (
	"fmt"
	"strings"
)

type Presence string

const (
	PresenceAvailable Presence = "available"
	PresenceBusy      Presence = "busy"
	PresenceAway      Presence = "away"
	PresenceOffline   Presence = "offline"
)

func (p Presence) String() string {
	return string(p)
}

func (p Presence) IsValid() bool {
	switch p {
	case PresenceAvailable, PresenceBusy, PresenceAway, PresenceOffline:
		return true
	}
	return false
}

func NewPresence(s string) (Presence, error) {
	p := Presence(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid presence: %s", s)
	}
	return p, nil
}
