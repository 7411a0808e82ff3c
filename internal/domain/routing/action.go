package routing

import "strings"

// Action is the parsed effect of a rule. Nil fields have no effect.
type Action struct {
	QueueName       *string
	Priority        *string
	Category        *string
	AutoAssignAgent *bool
}

// ParseAction decodes an action payload with the same tolerance as
// ParseCondition.
func ParseAction(raw string) Action {
	var a Action
	fields, ok := decodeObject(raw)
	if !ok {
		return a
	}
	a.QueueName = decodeString(fields, "queueName")
	a.Priority = decodeString(fields, "priority")
	a.Category = decodeString(fields, "category")
	a.AutoAssignAgent = decodeBool(fields, "autoAssignAgent")
	return a
}

// QueueNameValue returns the non-blank queue name, if any.
func (a Action) QueueNameValue() (string, bool) {
	return nonBlank(a.QueueName)
}

func (a Action) PriorityValue() (string, bool) {
	return nonBlank(a.Priority)
}

func (a Action) CategoryValue() (string, bool) {
	return nonBlank(a.Category)
}

func (a Action) ShouldAutoAssign() bool {
	return a.AutoAssignAgent != nil && *a.AutoAssignAgent
}

func nonBlank(s *string) (string, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", false
	}
	return *s, true
}
