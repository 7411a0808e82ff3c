package agent

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/agent/dto"
	"github.com/supporthub/supporthub/internal/application/agent/usecases"
	"github.com/supporthub/supporthub/internal/interfaces/http/handlers/testutil"
	"github.com/supporthub/supporthub/internal/shared/authorization"
	"github.com/supporthub/supporthub/internal/shared/errors"
)

type mockListAgentsUC struct {
	result []dto.AgentDTO
	err    error
}

func (m *mockListAgentsUC) Execute(_ context.Context) ([]dto.AgentDTO, error) {
	return m.result, m.err
}

type mockUpdatePresenceUC struct {
	got    *usecases.UpdatePresenceCommand
	result *dto.AgentDTO
	err    error
}

func (m *mockUpdatePresenceUC) Execute(_ context.Context, cmd usecases.UpdatePresenceCommand) (*dto.AgentDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

func TestAgentHandler_ListAgents(t *testing.T) {
	list := &mockListAgentsUC{result: []dto.AgentDTO{
		{UserID: "u-alex", DisplayName: "Agent Alex", Presence: "available", MaxActiveTickets: 5, Skills: []string{}, QueueIDs: []uint{1}},
	}}
	handler := NewAgentHandler(list, &mockUpdatePresenceUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/agents", nil)
	testutil.SetAuthContext(c, "u-sam", "Sam", authorization.RoleSupervisor)

	handler.ListAgents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []dto.AgentDTO `json:"items"`
		Total int            `json:"total"`
	}
	_, err := testutil.DecodeData(w, &page)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "available", page.Items[0].Presence)
}

func TestAgentHandler_UpdateMyPresence(t *testing.T) {
	update := &mockUpdatePresenceUC{result: &dto.AgentDTO{UserID: "u-bea", Presence: "busy"}}
	handler := NewAgentHandler(&mockListAgentsUC{}, update, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/agents/me/presence", dto.UpdatePresenceRequest{Presence: "busy"})
	testutil.SetAuthContext(c, "u-bea", "Agent Bea", authorization.RoleAgent)

	handler.UpdateMyPresence(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, update.got)
	assert.Equal(t, "u-bea", update.got.UserID)
	assert.Equal(t, "busy", update.got.Presence)
}

func TestAgentHandler_UpdateMyPresence_Errors(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		body   any
		ucErr  error
		want   int
	}{
		{"unauthenticated", "", dto.UpdatePresenceRequest{Presence: "busy"}, nil, http.StatusUnauthorized},
		{"missing presence", "u-bea", map[string]string{}, nil, http.StatusBadRequest},
		{"unknown presence", "u-bea", dto.UpdatePresenceRequest{Presence: "napping"}, errors.NewValidationError("invalid presence"), http.StatusBadRequest},
		{"not an agent", "u-sam", dto.UpdatePresenceRequest{Presence: "busy"}, errors.NewNotFoundError("agent not found"), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := &mockUpdatePresenceUC{err: tt.ucErr}
			handler := NewAgentHandler(&mockListAgentsUC{}, update, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPatch, "/agents/me/presence", tt.body)
			if tt.userID != "" {
				testutil.SetAuthContext(c, tt.userID, "Someone", authorization.RoleAgent)
			}

			handler.UpdateMyPresence(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
