package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/ticket/dto"
	"github.com/supporthub/supporthub/internal/application/ticket/usecases"
	"github.com/supporthub/supporthub/internal/interfaces/http/handlers/testutil"
	"github.com/supporthub/supporthub/internal/shared/authorization"
	"github.com/supporthub/supporthub/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListTicketsUC struct {
	got    *usecases.ListTicketsQuery
	result []dto.TicketListItemDTO
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, q usecases.ListTicketsQuery) ([]dto.TicketListItemDTO, error) {
	m.got = &q
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	got    *usecases.UpdateTicketCommand
	result *dto.TicketDTO
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockAssignTicketUC struct {
	got    *usecases.AssignTicketCommand
	result *dto.TicketDTO
	err    error
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*dto.TicketDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type testDeps struct {
	list   *mockListTicketsUC
	update *mockUpdateTicketUC
	assign *mockAssignTicketUC
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	if deps.list == nil {
		deps.list = &mockListTicketsUC{}
	}
	if deps.update == nil {
		deps.update = &mockUpdateTicketUC{}
	}
	if deps.assign == nil {
		deps.assign = &mockAssignTicketUC{}
	}
	return NewTicketHandler(deps.list, deps.update, deps.assign, testutil.NewMockLogger())
}

func sampleTicket() *dto.TicketDTO {
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	queueID := uint(2)
	return &dto.TicketDTO{
		ID:        1,
		QueueID:   &queueID,
		Status:    "open",
		Priority:  "normal",
		Category:  "Tech",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_PassesFilters(t *testing.T) {
	list := &mockListTicketsUC{result: []dto.TicketListItemDTO{{ID: 1, Queue: "General", Status: "open"}}}
	handler := newTestTicketHandler(testDeps{list: list})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetAuthContext(c, "u-bea", "Agent Bea", authorization.RoleAgent)
	testutil.SetQueryParams(c, map[string]string{"assigned_to": "me", "queue_id": "2", "status": "open"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, list.got)
	assert.Equal(t, "u-bea", list.got.UserID)
	assert.True(t, list.got.AssignedToMe)
	require.NotNil(t, list.got.QueueID)
	assert.Equal(t, uint(2), *list.got.QueueID)
	require.NotNil(t, list.got.Status)
	assert.Equal(t, "open", *list.got.Status)

	var page struct {
		Items []dto.TicketListItemDTO `json:"items"`
		Total int                     `json:"total"`
	}
	_, err := testutil.DecodeData(w, &page)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "General", page.Items[0].Queue)
}

func TestTicketHandler_ListTickets_NoFilters(t *testing.T) {
	list := &mockListTicketsUC{result: []dto.TicketListItemDTO{}}
	handler := newTestTicketHandler(testDeps{list: list})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetAuthContext(c, "u-sam", "Sam", authorization.RoleSupervisor)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, list.got)
	assert.False(t, list.got.AssignedToMe)
	assert.Nil(t, list.got.QueueID)
	assert.Nil(t, list.got.Status)
}

func TestTicketHandler_ListTickets_BadQuery(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"assigned_to other than me", map[string]string{"assigned_to": "u-2"}},
		{"non-numeric queue", map[string]string{"queue_id": "general"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := &mockListTicketsUC{}
			handler := newTestTicketHandler(testDeps{list: list})

			c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
			testutil.SetAuthContext(c, "u-bea", "Agent Bea", authorization.RoleAgent)
			testutil.SetQueryParams(c, tt.params)

			handler.ListTickets(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, list.got)
		})
	}
}

func TestTicketHandler_ListTickets_InvalidStatusFromUseCase(t *testing.T) {
	list := &mockListTicketsUC{err: errors.NewValidationError("invalid status", "waiting")}
	handler := newTestTicketHandler(testDeps{list: list})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetAuthContext(c, "u-bea", "Agent Bea", authorization.RoleAgent)
	testutil.SetQueryParams(c, map[string]string{"status": "waiting"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// UpdateTicket
// =====================================================================

func TestTicketHandler_UpdateTicket_Success(t *testing.T) {
	update := &mockUpdateTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{update: update})

	c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/1", map[string]string{"status": "resolved"})
	testutil.SetAuthContext(c, "u-bea", "Agent Bea", authorization.RoleAgent)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, update.got)
	assert.Equal(t, uint(1), update.got.TicketID)
	require.NotNil(t, update.got.Status)
	assert.Equal(t, "resolved", *update.got.Status)
	assert.Nil(t, update.got.Priority)
	assert.Nil(t, update.got.Category)
}

func TestTicketHandler_UpdateTicket_Errors(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		ucErr error
		want  int
	}{
		{"invalid id", "zero", nil, http.StatusBadRequest},
		{"not found", "404", errors.NewNotFoundError("ticket not found"), http.StatusNotFound},
		{"invalid priority", "1", errors.NewValidationError("invalid priority"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestTicketHandler(testDeps{update: &mockUpdateTicketUC{err: tt.ucErr}})

			c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/"+tt.id, map[string]string{"priority": "high"})
			testutil.SetAuthContext(c, "u-bea", "Agent Bea", authorization.RoleAgent)
			testutil.SetURLParam(c, "id", tt.id)

			handler.UpdateTicket(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// =====================================================================
// AssignTicket
// =====================================================================

func TestTicketHandler_AssignTicket_Success(t *testing.T) {
	assign := &mockAssignTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{assign: assign})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/assign", map[string]any{"queue_id": 2, "agent_user_id": "u-bea"})
	testutil.SetAuthContext(c, "u-sam", "Sam", authorization.RoleSupervisor)
	testutil.SetURLParam(c, "id", "1")

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, assign.got)
	assert.Equal(t, "u-sam", assign.got.AssignedBy)
	require.NotNil(t, assign.got.QueueID)
	assert.Equal(t, uint(2), *assign.got.QueueID)
	require.NotNil(t, assign.got.AgentUserID)
	assert.Equal(t, "u-bea", *assign.got.AgentUserID)
}

func TestTicketHandler_AssignTicket_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nothing to assign", errors.NewValidationError("queue ID or agent user ID is required"), http.StatusBadRequest},
		{"ticket missing", errors.NewNotFoundError("ticket not found"), http.StatusNotFound},
		{"contention", errors.NewConflictError("ticket was modified concurrently"), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestTicketHandler(testDeps{assign: &mockAssignTicketUC{err: tt.err}})

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/assign", map[string]any{})
			testutil.SetAuthContext(c, "u-sam", "Sam", authorization.RoleSupervisor)
			testutil.SetURLParam(c, "id", "1")

			handler.AssignTicket(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
