package agent

import (
	"fmt"
	"strings"

	vo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
)

const DefaultMaxActiveTickets = 5

// Agent is the dispatch view of a user who works tickets. The active ticket
// count is advisory: overflow assignment may push it past the maximum.
type Agent struct {
	userID            string
	displayName       string
	presence          vo.Presence
	maxActiveTickets  int
	activeTicketCount int
	skills            []string
	queueIDs          []uint
}

func NewAgent(userID, displayName string, maxActive int, skills []string) (*Agent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if maxActive <= 0 {
		maxActive = DefaultMaxActiveTickets
	}
	return &Agent{
		userID:           userID,
		displayName:      displayName,
		presence:         vo.PresenceOffline,
		maxActiveTickets: maxActive,
		skills:           skills,
	}, nil
}

func ReconstructAgent(
	userID, displayName string,
	presence vo.Presence,
	maxActive, activeCount int,
	skills []string,
	queueIDs []uint,
) *Agent {
	return &Agent{
		userID:            userID,
		displayName:       displayName,
		presence:          presence,
		maxActiveTickets:  maxActive,
		activeTicketCount: activeCount,
		skills:            skills,
		queueIDs:          queueIDs,
	}
}

func (a *Agent) UserID() string         { return a.userID }
func (a *Agent) DisplayName() string    { return a.displayName }
func (a *Agent) Presence() vo.Presence  { return a.presence }
func (a *Agent) MaxActiveTickets() int  { return a.maxActiveTickets }
func (a *Agent) ActiveTicketCount() int { return a.activeTicketCount }
func (a *Agent) Skills() []string       { return a.skills }
func (a *Agent) QueueIDs() []uint       { return a.queueIDs }

func (a *Agent) IsAvailable() bool {
	return a.presence == vo.PresenceAvailable
}

func (a *Agent) HasCapacity() bool {
	return a.activeTicketCount < a.maxActiveTickets
}

// SyncActiveTicketCount replaces the cached workload with a freshly read one.
func (a *Agent) SyncActiveTicketCount(n int) {
	a.activeTicketCount = n
}

func (a *Agent) SetPresence(p vo.Presence) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid presence: %s", p)
	}
	a.presence = p
	return nil
}

// SkillsCSV joins skills the way they are stored.
func (a *Agent) SkillsCSV() string {
	return strings.Join(a.skills, ",")
}

// ParseSkillsCSV splits a stored skills column, dropping blanks.
func ParseSkillsCSV(csv string) []string {
	var out []string
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
