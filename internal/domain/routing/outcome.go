package routing

// AssignmentTier identifies which fallback level produced an assignment.
type AssignmentTier int

const (
	TierNone AssignmentTier = iota
	// TierAvailable: mapped, present and under capacity.
	TierAvailable
	// TierUnderCapacity: mapped and under capacity, any presence.
	TierUnderCapacity
	// TierOverflow: mapped, capacity ignored.
	TierOverflow
)

func (t AssignmentTier) String() string {
	switch t {
	case TierAvailable:
		return "available"
	case TierUnderCapacity:
		return "under_capacity"
	case TierOverflow:
		return "overflow"
	default:
		return "none"
	}
}

// Assignment is the result of an assignment attempt.
type Assignment struct {
	Assigned bool
	AgentID  string
	Tier     AssignmentTier
}

// Outcome reports what the engine did with a ticket.
type Outcome struct {
	Matched    bool
	RuleID     uint
	RuleName   string
	Assignment Assignment
}

// NoMatch is the outcome when no enabled rule matched.
var NoMatch = Outcome{}
