package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus(" Resolved")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, s)
	assert.True(t, s.IsTerminal())

	_, err = NewTicketStatus("in_progress")
	assert.Error(t, err)
}

func TestTerminalStatusStrings(t *testing.T) {
	assert.ElementsMatch(t, []string{"resolved", "closed"}, TerminalStatusStrings())
	assert.False(t, StatusPending.IsTerminal())
}

func TestNewPriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"URGENT", PriorityUrgent, false},
		{"high", PriorityHigh, false},
		{"Low", PriorityLow, false},
		{"critical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewPriority(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
