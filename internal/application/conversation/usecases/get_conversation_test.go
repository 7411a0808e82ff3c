package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/testutil"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	apperrors "github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/services/markdown"
)

func (f *fixture) view() *GetConversationUseCase {
	return NewGetConversationUseCase(
		f.store.Tickets(),
		f.store.Conversations(),
		f.store.Customers(),
		markdown.NewRenderer(),
		testutil.NewDiscardLogger(),
	)
}

func TestGetConversation_MessagesInSentOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	convo, tk := f.seed(t, convvo.ChannelEmail, "ann@example.com", "Login")

	// Appended out of order on purpose.
	late, _ := conversation.NewMessage(convo.ID(), convvo.DirectionOutbound, "agent:Bea", "**fixed**", start.Add(2*time.Minute))
	early, _ := conversation.NewMessage(convo.ID(), convvo.DirectionInbound, "ann@example.com", "cannot log in <script>alert(1)</script>", start)
	require.NoError(t, f.store.Conversations().AppendMessage(ctx, late))
	require.NoError(t, f.store.Conversations().AppendMessage(ctx, early))

	view, err := f.view().Execute(ctx, GetConversationQuery{TicketID: tk.ID()})

	require.NoError(t, err)
	assert.Equal(t, tk.ID(), view.TicketID)
	assert.Equal(t, convo.ID(), view.ConversationID)
	assert.Equal(t, "email", view.Channel)
	require.NotNil(t, view.Subject)
	assert.Equal(t, "Login", *view.Subject)
	assert.Equal(t, "Ann", view.Customer.Name)
	assert.Equal(t, "ann@example.com", view.Customer.Email)

	require.Len(t, view.Messages, 2)
	assert.Equal(t, early.ID(), view.Messages[0].ID)
	assert.Equal(t, "inbound", view.Messages[0].Direction)
	assert.NotContains(t, view.Messages[0].BodyHTML, "<script>")
	assert.Equal(t, late.ID(), view.Messages[1].ID)
	assert.Contains(t, view.Messages[1].BodyHTML, "<strong>fixed</strong>")
	assert.Equal(t, "**fixed**", view.Messages[1].Body)
}

func TestGetConversation_EmptyConversation(t *testing.T) {
	f := newFixture()
	_, tk := f.seed(t, convvo.ChannelChat, "", "")

	view, err := f.view().Execute(context.Background(), GetConversationQuery{TicketID: tk.ID()})

	require.NoError(t, err)
	assert.NotNil(t, view.Messages)
	assert.Empty(t, view.Messages)
	assert.Nil(t, view.Subject)
}

func TestGetConversation_UnknownTicket(t *testing.T) {
	f := newFixture()

	_, err := f.view().Execute(context.Background(), GetConversationQuery{TicketID: 404})

	assert.True(t, apperrors.IsNotFoundError(err))
}
