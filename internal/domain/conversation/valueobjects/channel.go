package valueobjects

import (
	"fmt"
	"strings"
)

// Channel is the medium a conversation arrived on.
type Channel string

const (
	ChannelChat  Channel = "chat"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelChat, ChannelEmail, ChannelSMS:
		return true
	}
	return false
}

// ParseChannel accepts any casing, e.g. "SMS" or "Email".
func ParseChannel(s string) (Channel, error) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid channel: %q", s)
	}
	return c, nil
}
