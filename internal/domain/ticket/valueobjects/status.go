package valueobjects

import (
	"fmt"
	"strings"
)

type TicketStatus string

const (
	StatusNew      TicketStatus = "new"
	StatusOpen     TicketStatus = "open"
	StatusPending  TicketStatus = "pending"
	StatusResolved TicketStatus = "resolved"
	StatusClosed   TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:      true,
	StatusOpen:     true,
	StatusPending:  true,
	StatusResolved: true,
	StatusClosed:   true,
}

// TerminalStatuses are the statuses that end a ticket's life; a conversation
// whose ticket is in one of them is never reused.
var TerminalStatuses = []TicketStatus{StatusResolved, StatusClosed}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

// IsTerminal reports whether the ticket is resolved or closed.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusResolved || ts == StatusClosed
}

// NewTicketStatus parses s case-insensitively.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(strings.ToLower(strings.TrimSpace(s)))
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// TerminalStatusStrings returns TerminalStatuses as plain strings for queries.
func TerminalStatusStrings() []string {
	out := make([]string, len(TerminalStatuses))
	for i, s := range TerminalStatuses {
		out[i] = s.String()
	}
	return out
}
