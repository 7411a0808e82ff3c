package queue

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/application/queue/dto"
	"github.com/supporthub/supporthub/internal/interfaces/http/handlers/testutil"
	"github.com/supporthub/supporthub/internal/shared/errors"
)

type mockListQueuesUC struct {
	result []dto.QueueDTO
	err    error
}

func (m *mockListQueuesUC) Execute(_ context.Context) ([]dto.QueueDTO, error) {
	return m.result, m.err
}

type mockGetStatsUC struct {
	gotID  uint
	result *dto.QueueStatsDTO
	err    error
}

func (m *mockGetStatsUC) Execute(_ context.Context, queueID uint) (*dto.QueueStatsDTO, error) {
	m.gotID = queueID
	return m.result, m.err
}

func TestQueueHandler_ListQueues(t *testing.T) {
	list := &mockListQueuesUC{result: []dto.QueueDTO{{ID: 1, Name: "General"}, {ID: 2, Name: "Tech Support"}}}
	handler := NewQueueHandler(list, &mockGetStatsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/queues", nil)

	handler.ListQueues(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []dto.QueueDTO `json:"items"`
		Total int            `json:"total"`
	}
	_, err := testutil.DecodeData(w, &page)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "Tech Support", page.Items[1].Name)
}

func TestQueueHandler_ListQueues_Error(t *testing.T) {
	handler := NewQueueHandler(&mockListQueuesUC{err: errors.NewInternalError("failed to list queues")}, &mockGetStatsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/queues", nil)

	handler.ListQueues(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestQueueHandler_GetQueueStats(t *testing.T) {
	oldest := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	stats := &mockGetStatsUC{result: &dto.QueueStatsDTO{QueueID: 2, OpenCount: 3, OldestCreatedAt: &oldest}}
	handler := NewQueueHandler(&mockListQueuesUC{}, stats, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/queues/2/stats", nil)
	testutil.SetURLParam(c, "id", "2")

	handler.GetQueueStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), stats.gotID)
	var result dto.QueueStatsDTO
	_, err := testutil.DecodeData(w, &result)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.OpenCount)
	require.NotNil(t, result.OldestCreatedAt)
	assert.True(t, oldest.Equal(*result.OldestCreatedAt))
}

func TestQueueHandler_GetQueueStats_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{"invalid id", "0", nil, http.StatusBadRequest},
		{"unknown queue", "42", errors.NewNotFoundError("queue not found"), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewQueueHandler(&mockListQueuesUC{}, &mockGetStatsUC{err: tt.err}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/queues/"+tt.id+"/stats", nil)
			testutil.SetURLParam(c, "id", tt.id)

			handler.GetQueueStats(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
