package usecases

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/inbound/dto"
	"github.com/supporthub/supporthub/internal/application/routing/services"
	"github.com/supporthub/supporthub/internal/application/testutil"
	agentvo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	ticketvo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	apperrors "github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

var fixedNow = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store     *testutil.Store
	tx        *testutil.MockTransactor
	publisher *testutil.RecordingPublisher
	queues    map[string]uint
}

func newFixture() *fixture {
	store := testutil.NewStore()
	f := &fixture{
		store:     store,
		tx:        &testutil.MockTransactor{},
		publisher: &testutil.RecordingPublisher{},
		queues:    map[string]uint{},
	}
	for _, name := range []string{"Billing", "Tech Support", "General"} {
		f.queues[name] = store.SeedQueue(name)
	}
	store.SeedAgent("alex", "Agent Alex", agentvo.PresenceAvailable, 5, 0, f.queues["Billing"], f.queues["General"])
	store.SeedAgent("bea", "Agent Bea", agentvo.PresenceAvailable, 5, 0, f.queues["Tech Support"], f.queues["General"])

	store.SeedRule("VIP", true, 1, `{"isVip":true}`, `{"queueName":"General","priority":"Urgent","category":"VIP","autoAssignAgent":true}`)
	store.SeedRule("Billing", true, 2, `{"keywords":["refund","invoice","charged","billing","payment"]}`, `{"queueName":"Billing","priority":"High","category":"Billing","autoAssignAgent":true}`)
	store.SeedRule("Tech", true, 3, `{"keywords":["error","crash","login","bug","cannot","issue"]}`, `{"queueName":"Tech Support","priority":"Normal","category":"Tech","autoAssignAgent":true}`)
	store.SeedRule("Fallback", true, 999, `{}`, `{"queueName":"General","priority":"Normal","category":"General","autoAssignAgent":true}`)
	return f
}

func (f *fixture) ingest() *IngestInboundUseCase {
	log := testutil.NewDiscardLogger()
	sel := services.NewSelector(f.store.Agents(), services.SelectorConfig{AllowOverflow: true}, log)
	engine := services.NewEngine(f.store.Rules(), services.NewActionExecutor(f.store.Queues(), sel, log), log)
	uc := NewIngestInboundUseCase(
		f.store.Customers(),
		f.store.Conversations(),
		f.store.Tickets(),
		f.store.Queues(),
		engine,
		f.tx,
		f.publisher,
		log,
	)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func emailCmd(email, name, body string) IngestInboundCommand {
	return IngestInboundCommand{
		Channel:  "email",
		From:     email,
		Customer: dto.CustomerHint{Name: name, Email: email},
		Subject:  "Hello",
		Body:     body,
	}
}

func TestIngestInbound_NewContactCreatesTicketAndRoutes(t *testing.T) {
	f := newFixture()

	res, err := f.ingest().Execute(context.Background(), emailCmd("ann@example.com", "Ann", "just saying hi"))

	require.NoError(t, err)
	assert.NotZero(t, res.TicketID)
	assert.NotZero(t, res.ConversationID)
	assert.NotZero(t, res.MessageID)
	assert.Equal(t, "General", res.QueueName)
	assert.Equal(t, 1, res.QueuePosition)
	assert.Equal(t, "alex", res.AssignedAgentID)
	assert.Equal(t, "open", res.Status)
	assert.Equal(t, "normal", res.Priority)
	assert.Equal(t, "General", res.Category)
	assert.Equal(t, "Fallback", res.MatchedRule)
	assert.Equal(t, 1, f.tx.Calls)
	assert.Equal(t, 1, f.store.AgentLoad("alex"))

	assert.Equal(t, []string{
		ticket.EventTypeTicketUpdated,
		ticket.EventTypeTicketAssigned,
		conversation.EventTypeMessagePosted,
	}, f.publisher.Types())
}

func TestIngestInbound_VIPScenario(t *testing.T) {
	f := newFixture()
	cmd := emailCmd("vip@example.com", "Victor", "I was charged twice, refund please")
	cmd.Customer.IsVIP = true

	res, err := f.ingest().Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "General", res.QueueName)
	assert.Equal(t, "urgent", res.Priority)
	assert.Equal(t, "VIP", res.Category)
	assert.Equal(t, "open", res.Status)
	assert.NotEmpty(t, res.AssignedAgentID)
}

func TestIngestInbound_SMSTechScenario(t *testing.T) {
	f := newFixture()
	f.store.SeedRule("SMS", true, 4, `{"channel":"SMS"}`, `{"queueName":"General","priority":"High","category":"SMS","autoAssignAgent":true}`)

	res, err := f.ingest().Execute(context.Background(), IngestInboundCommand{
		Channel:  "sms",
		Customer: dto.CustomerHint{Phone: "+15550100"},
		Body:     "App keeps crashing: ERROR 500",
	})

	require.NoError(t, err)
	assert.Equal(t, "Tech Support", res.QueueName)
	assert.Equal(t, "normal", res.Priority)
	assert.Equal(t, "Tech", res.Category)
	assert.Equal(t, "bea", res.AssignedAgentID)
}

func TestIngestInbound_DeduplicatesCustomerByEmailAndRefreshesName(t *testing.T) {
	f := newFixture()
	uc := f.ingest()

	first, err := uc.Execute(context.Background(), emailCmd("ann@example.com", "Ann", "one"))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), emailCmd("ann@example.com", "Ann Smith", "two"))
	require.NoError(t, err)

	assert.Equal(t, 1, f.store.CustomerCount())
	assert.Equal(t, first.TicketID, second.TicketID)
	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Equal(t, 2, f.store.MessageCount(first.ConversationID))

	tk, err := f.store.Tickets().GetByID(context.Background(), first.TicketID)
	require.NoError(t, err)
	cust, err := f.store.Customers().GetByID(context.Background(), tk.CustomerID())
	require.NoError(t, err)
	assert.Equal(t, "Ann Smith", cust.Name())
}

func TestIngestInbound_BlankNameKeepsExistingName(t *testing.T) {
	f := newFixture()
	uc := f.ingest()

	first, err := uc.Execute(context.Background(), emailCmd("ann@example.com", "Ann", "one"))
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), emailCmd("ann@example.com", "", "two"))
	require.NoError(t, err)

	tk, _ := f.store.Tickets().GetByID(context.Background(), first.TicketID)
	cust, _ := f.store.Customers().GetByID(context.Background(), tk.CustomerID())
	assert.Equal(t, "Ann", cust.Name())
}

func TestIngestInbound_PhoneDedupWithoutEmail(t *testing.T) {
	f := newFixture()
	uc := f.ingest()
	cmd := IngestInboundCommand{Channel: "sms", Customer: dto.CustomerHint{Phone: "+15550100"}, Body: "hi"}

	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, f.store.CustomerCount())
	assert.Equal(t, 1, f.store.TicketCount())
}

func TestIngestInbound_UnknownEmailFallsBackToKnownPhone(t *testing.T) {
	f := newFixture()
	uc := f.ingest()

	bySMS, err := uc.Execute(context.Background(), IngestInboundCommand{
		Channel:  "sms",
		Customer: dto.CustomerHint{Phone: "+15550001"},
		Body:     "hi",
	})
	require.NoError(t, err)
	byEmail, err := uc.Execute(context.Background(), IngestInboundCommand{
		Channel:  "email",
		Customer: dto.CustomerHint{Email: "ann@example.com", Phone: "+15550001"},
		Body:     "following up",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.store.CustomerCount())
	smsTicket, err := f.store.Tickets().GetByID(context.Background(), bySMS.TicketID)
	require.NoError(t, err)
	emailTicket, err := f.store.Tickets().GetByID(context.Background(), byEmail.TicketID)
	require.NoError(t, err)
	assert.Equal(t, smsTicket.CustomerID(), emailTicket.CustomerID())

	cust, err := f.store.Customers().GetByID(context.Background(), smsTicket.CustomerID())
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", cust.Email())
	assert.Equal(t, "+15550001", cust.Phone())
}

func TestIngestInbound_KnownEmailKeepsItsOwnCustomer(t *testing.T) {
	f := newFixture()
	uc := f.ingest()

	_, err := uc.Execute(context.Background(), IngestInboundCommand{
		Channel:  "sms",
		Customer: dto.CustomerHint{Phone: "+15550001"},
		Body:     "hi",
	})
	require.NoError(t, err)
	first, err := uc.Execute(context.Background(), emailCmd("bob@example.com", "Bob", "one"))
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), IngestInboundCommand{
		Channel:  "email",
		Customer: dto.CustomerHint{Email: "bob@example.com", Phone: "+15550001"},
		Body:     "two",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, f.store.CustomerCount())
	assert.Equal(t, first.TicketID, second.TicketID, "email match wins over phone")
}

func TestIngestInbound_LogsMaskedContact(t *testing.T) {
	f := newFixture()
	var buf bytes.Buffer
	uc := f.ingest()
	uc.logger = logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := uc.Execute(context.Background(), IngestInboundCommand{
		Channel:  "email",
		Customer: dto.CustomerHint{Email: "ann@example.com", Phone: "+15550001"},
		Body:     "hi",
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "a***@example.com")
	assert.Contains(t, out, "has_phone=true")
	assert.NotContains(t, out, "ann@example.com")
	assert.NotContains(t, out, "+15550001")
}

func TestIngestInbound_OtherChannelStartsNewConversation(t *testing.T) {
	f := newFixture()
	uc := f.ingest()

	byEmail, err := uc.Execute(context.Background(), emailCmd("ann@example.com", "Ann", "one"))
	require.NoError(t, err)
	chat := emailCmd("ann@example.com", "Ann", "two")
	chat.Channel = "chat"
	byChat, err := uc.Execute(context.Background(), chat)
	require.NoError(t, err)

	assert.NotEqual(t, byEmail.ConversationID, byChat.ConversationID)
	assert.Equal(t, 1, f.store.CustomerCount())
	assert.Equal(t, 2, f.store.TicketCount())
}

func TestIngestInbound_ClosedTicketIsNotReopened(t *testing.T) {
	for _, status := range []ticketvo.TicketStatus{ticketvo.StatusResolved, ticketvo.StatusClosed} {
		t.Run(status.String(), func(t *testing.T) {
			f := newFixture()
			uc := f.ingest()
			ctx := context.Background()

			first, err := uc.Execute(ctx, emailCmd("ann@example.com", "Ann", "one"))
			require.NoError(t, err)

			tk, err := f.store.Tickets().GetByID(ctx, first.TicketID)
			require.NoError(t, err)
			require.NoError(t, tk.ChangeStatus(status, fixedNow))
			require.NoError(t, f.store.Tickets().Update(ctx, tk))

			second, err := uc.Execute(ctx, emailCmd("ann@example.com", "Ann", "two"))
			require.NoError(t, err)

			assert.NotEqual(t, first.TicketID, second.TicketID)
			assert.NotEqual(t, first.ConversationID, second.ConversationID)
			assert.Equal(t, 1, f.store.MessageCount(first.ConversationID))

			old, err := f.store.Tickets().GetByID(ctx, first.TicketID)
			require.NoError(t, err)
			assert.Equal(t, status, old.Status())
		})
	}
}

func TestIngestInbound_QueuePositionCountsEarlierTickets(t *testing.T) {
	f := newFixture()
	uc := f.ingest()

	first, err := uc.Execute(context.Background(), emailCmd("a@example.com", "A", "hello"))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), emailCmd("b@example.com", "B", "hello"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.QueuePosition)
	assert.Equal(t, 2, second.QueuePosition)
}

func TestIngestInbound_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  IngestInboundCommand
	}{
		{name: "blank body", cmd: IngestInboundCommand{Channel: "chat", Body: "   "}},
		{name: "unknown channel", cmd: IngestInboundCommand{Channel: "fax", Body: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.ingest().Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Zero(t, f.tx.Calls)
			assert.Zero(t, f.store.CustomerCount())
			assert.Zero(t, f.store.TicketCount())
			assert.Empty(t, f.publisher.Events)
		})
	}
}

func TestIngestInbound_StoreFailureIsInternalAndSilent(t *testing.T) {
	f := newFixture()
	f.store.FailOn["ticket.Update"] = errors.New("disk full")

	_, err := f.ingest().Execute(context.Background(), emailCmd("ann@example.com", "Ann", "hi"))

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Empty(t, f.publisher.Events)
}

func TestIngestInbound_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture()
	f.publisher.Err = errors.New("buffer full")

	res, err := f.ingest().Execute(context.Background(), emailCmd("ann@example.com", "Ann", "hi"))

	require.NoError(t, err)
	assert.NotZero(t, res.TicketID)
}

func TestIngestInbound_TimestampUsedForMessage(t *testing.T) {
	f := newFixture()
	at := time.Date(2024, 6, 1, 8, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	cmd := emailCmd("ann@example.com", "Ann", "hi")
	cmd.Timestamp = &at

	res, err := f.ingest().Execute(context.Background(), cmd)
	require.NoError(t, err)

	msgs, err := f.store.Conversations().ListMessages(context.Background(), res.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].SentAt().Equal(at))
	assert.Equal(t, time.UTC, msgs[0].SentAt().Location())

	convo, err := f.store.Conversations().GetByID(context.Background(), res.ConversationID)
	require.NoError(t, err)
	assert.True(t, convo.LastMessageAt().Equal(at))
}

func TestSenderTag(t *testing.T) {
	assert.Equal(t, "web-widget", senderTag(IngestInboundCommand{From: "web-widget", Customer: dto.CustomerHint{Email: "a@b.c"}}))
	assert.Equal(t, "a@b.c", senderTag(IngestInboundCommand{Customer: dto.CustomerHint{Email: "a@b.c", Phone: "1"}}))
	assert.Equal(t, "1", senderTag(IngestInboundCommand{Customer: dto.CustomerHint{Phone: "1"}}))
	assert.Equal(t, "unknown", senderTag(IngestInboundCommand{}))
}
