package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestNewConversation(t *testing.T) {
	c, err := NewConversation(7, vo.ChannelEmail, "  Refund  ", t0)
	require.NoError(t, err)
	assert.Equal(t, "Refund", c.SubjectText())
	assert.Equal(t, t0, c.LastMessageAt())

	c, err = NewConversation(7, vo.ChannelChat, "", t0)
	require.NoError(t, err)
	assert.Nil(t, c.Subject())

	_, err = NewConversation(7, vo.Channel("fax"), "", t0)
	assert.Error(t, err)
}

func TestNewMessage_RejectsBlankBody(t *testing.T) {
	_, err := NewMessage(1, vo.DirectionInbound, "x", " \n\t", t0)
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestRecord_BumpsLastMessageAt(t *testing.T) {
	c, _ := NewConversation(7, vo.ChannelChat, "", t0)
	require.NoError(t, c.SetID(3))

	later := t0.Add(time.Hour)
	m, err := NewMessage(3, vo.DirectionOutbound, "agent:Alex", "hi", later)
	require.NoError(t, err)
	require.NoError(t, c.Record(m))
	assert.Equal(t, later, c.LastMessageAt())

	earlier, _ := NewMessage(3, vo.DirectionInbound, "x", "late delivery", t0.Add(-time.Hour))
	require.NoError(t, c.Record(earlier))
	assert.Equal(t, later, c.LastMessageAt(), "time never moves backwards")

	other, _ := NewMessage(4, vo.DirectionInbound, "x", "hi", later)
	assert.Error(t, c.Record(other))
}

func TestNewMessagePostedEvent(t *testing.T) {
	m := ReconstructMessage(5, 3, vo.DirectionInbound, "guest", "hello", t0)
	e := NewMessagePostedEvent(9, m)

	assert.Equal(t, EventTypeMessagePosted, e.GetEventType())
	assert.Equal(t, "3", e.GetAggregateID())
	assert.Equal(t, uint(9), e.TicketID)
	assert.Equal(t, "inbound", e.Direction)
}
