package routing

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"

	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
)

// Condition is the parsed predicate of a rule. Nil fields are absent and
// impose no constraint; present fields are ANDed together.
type Condition struct {
	Keywords []string
	IsVIP    *bool
	Channel  *string
}

// Snapshot is the read-only view of a contact that conditions are evaluated
// against.
type Snapshot struct {
	Channel convvo.Channel
	IsVIP   bool
	Subject string
	Body    string
}

var folder = cases.Fold()

// ParseCondition decodes a condition payload. It never fails: malformed JSON
// yields an empty condition and fields of the wrong type are skipped.
func ParseCondition(raw string) Condition {
	var c Condition
	fields, ok := decodeObject(raw)
	if !ok {
		return c
	}

	if v, ok := fields["keywords"]; ok {
		var items []json.RawMessage
		if json.Unmarshal(v, &items) == nil {
			for _, item := range items {
				var kw string
				if json.Unmarshal(item, &kw) == nil && kw != "" {
					c.Keywords = append(c.Keywords, kw)
				}
			}
		}
	}
	c.IsVIP = decodeBool(fields, "isVip")
	c.Channel = decodeString(fields, "channel")
	return c
}

// IsEmpty reports whether the condition constrains nothing, i.e. it is a
// fallback that matches every contact.
func (c Condition) IsEmpty() bool {
	return len(c.Keywords) == 0 && c.IsVIP == nil && (c.Channel == nil || strings.TrimSpace(*c.Channel) == "")
}

// Matches evaluates the condition against s. It has no side effects.
func (c Condition) Matches(s Snapshot) bool {
	if c.Channel != nil && strings.TrimSpace(*c.Channel) != "" {
		ch, err := convvo.ParseChannel(*c.Channel)
		if err != nil || ch != s.Channel {
			return false
		}
	}

	if c.IsVIP != nil && *c.IsVIP != s.IsVIP {
		return false
	}

	if len(c.Keywords) > 0 {
		hay := folder.String(s.Subject + "\n" + s.Body)
		found := false
		for _, kw := range c.Keywords {
			if strings.Contains(hay, folder.String(kw)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func decodeObject(raw string) (map[string]json.RawMessage, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func decodeBool(fields map[string]json.RawMessage, key string) *bool {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	var b bool
	if json.Unmarshal(v, &b) != nil {
		return nil
	}
	return &b
}

func decodeString(fields map[string]json.RawMessage, key string) *string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	var s string
	if json.Unmarshal(v, &s) != nil {
		return nil
	}
	return &s
}
