package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/testutil"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/ticket"
)

var base = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store     *testutil.Store
	tx        *testutil.MockTransactor
	publisher *testutil.RecordingPublisher
}

func newFixture() *fixture {
	return &fixture{
		store:     testutil.NewStore(),
		tx:        &testutil.MockTransactor{},
		publisher: &testutil.RecordingPublisher{},
	}
}

// seedTicket stores a customer, conversation and ticket, applying mutate to
// the ticket before it is saved.
func (f *fixture) seedTicket(t *testing.T, name string, channel convvo.Channel, createdAt time.Time, mutate func(*ticket.Ticket)) *ticket.Ticket {
	t.Helper()
	ctx := context.Background()
	cust := customer.NewCustomer(name, "", "", false, createdAt)
	require.NoError(t, f.store.Customers().Create(ctx, cust))
	convo, err := conversation.NewConversation(cust.ID(), channel, "", createdAt)
	require.NoError(t, err)
	require.NoError(t, f.store.Conversations().Create(ctx, convo))
	tk, err := ticket.NewTicket(convo.ID(), cust.ID(), createdAt)
	require.NoError(t, err)
	if mutate != nil {
		mutate(tk)
	}
	require.NoError(t, f.store.Tickets().Create(ctx, tk))
	return tk
}

func (f *fixture) reload(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk, err := f.store.Tickets().GetByID(context.Background(), id)
	require.NoError(t, err)
	return tk
}
