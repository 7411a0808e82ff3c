package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/testutil"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	vo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/shared/authorization"
	apperrors "github.com/supporthub/supporthub/internal/shared/errors"
)

func (f *fixture) list() *ListTicketsUseCase {
	return NewListTicketsUseCase(
		f.store.Tickets(),
		f.store.Customers(),
		f.store.Conversations(),
		f.store.Queues(),
		f.store.Users(),
		testutil.NewDiscardLogger(),
	)
}

func strPtr(s string) *string { return &s }

func TestListTickets_ItemsAndOrdering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	billing := f.store.SeedQueue("Billing")
	alex, err := user.NewUser("Agent Alex", "alex@supporthub.local", authorization.RoleAgent)
	require.NoError(t, err)
	require.NoError(t, f.store.Users().Create(ctx, alex))

	older := f.seedTicket(t, "Ann", convvo.ChannelEmail, base, func(tk *ticket.Ticket) {
		tk.AssignQueue(billing)
		_, _ = tk.AssignAgent(alex.ID(), base)
	})
	newer := f.seedTicket(t, "Bob", convvo.ChannelSMS, base.Add(time.Minute), nil)

	items, err := f.list().Execute(ctx, ListTicketsQuery{})

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, newer.ID(), items[0].ID)
	assert.Equal(t, "Bob", items[0].CustomerName)
	assert.Equal(t, "sms", items[0].Channel)
	assert.Equal(t, "(unrouted)", items[0].Queue)
	assert.Nil(t, items[0].AssignedAgent)
	assert.Equal(t, "new", items[0].Status)

	assert.Equal(t, older.ID(), items[1].ID)
	assert.Equal(t, "Billing", items[1].Queue)
	require.NotNil(t, items[1].AssignedAgent)
	assert.Equal(t, "Agent Alex", *items[1].AssignedAgent)
	assert.Equal(t, "General", items[1].Category)
}

func TestListTickets_Filters(t *testing.T) {
	f := newFixture()
	billing := f.store.SeedQueue("Billing")
	tech := f.store.SeedQueue("Tech Support")

	mine := f.seedTicket(t, "Ann", convvo.ChannelChat, base, func(tk *ticket.Ticket) {
		tk.AssignQueue(billing)
		_, _ = tk.AssignAgent("me", base)
	})
	f.seedTicket(t, "Bob", convvo.ChannelChat, base, func(tk *ticket.Ticket) {
		tk.AssignQueue(tech)
		_, _ = tk.AssignAgent("someone-else", base)
	})
	closed := f.seedTicket(t, "Cid", convvo.ChannelChat, base, func(tk *ticket.Ticket) {
		tk.AssignQueue(tech)
		_ = tk.ChangeStatus(vo.StatusClosed, base)
	})

	tests := []struct {
		name  string
		query ListTicketsQuery
		want  []uint
	}{
		{name: "assigned to me", query: ListTicketsQuery{UserID: "me", AssignedToMe: true}, want: []uint{mine.ID()}},
		{name: "by queue and status", query: ListTicketsQuery{QueueID: &tech, Status: strPtr("Closed")}, want: []uint{closed.ID()}},
		{name: "by queue", query: ListTicketsQuery{QueueID: &billing}, want: []uint{mine.ID()}},
		{name: "empty status ignored", query: ListTicketsQuery{Status: strPtr("")}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := f.list().Execute(context.Background(), tt.query)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Len(t, items, 3)
				return
			}
			var got []uint
			for _, it := range items {
				got = append(got, it.ID)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestListTickets_CapsAtMaximum(t *testing.T) {
	f := newFixture()
	for i := 0; i < 205; i++ {
		f.seedTicket(t, "Ann", convvo.ChannelChat, base.Add(time.Duration(i)*time.Second), nil)
	}

	items, err := f.list().Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	assert.Len(t, items, 200)
}

func TestListTickets_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.list().Execute(context.Background(), ListTicketsQuery{Status: strPtr("escalated")})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = f.list().Execute(context.Background(), ListTicketsQuery{AssignedToMe: true})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetAppError(err).Type)
}
