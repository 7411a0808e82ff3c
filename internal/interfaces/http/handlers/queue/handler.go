package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/application/queue/usecases"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

type QueueHandler struct {
	listQueuesUC usecases.ListQueuesExecutor
	getStatsUC   usecases.GetQueueStatsExecutor
	logger       logger.Interface
}

func NewQueueHandler(
	listQueuesUC usecases.ListQueuesExecutor,
	getStatsUC usecases.GetQueueStatsExecutor,
	logger logger.Interface,
) *QueueHandler {
	return &QueueHandler{
		listQueuesUC: listQueuesUC,
		getStatsUC:   getStatsUC,
		logger:       logger,
	}
}

// ListQueues handles GET /queues
// @Summary List queues
// @Tags queues
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.QueueDTO}}
// @Router /queues [get]
func (h *QueueHandler) ListQueues(c *gin.Context) {
	result, err := h.listQueuesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// GetQueueStats handles GET /queues/:id/stats
// @Summary Queue depth and oldest waiting ticket
// @Tags queues
// @Produce json
// @Security Bearer
// @Param id path int true "Queue ID"
// @Success 200 {object} utils.APIResponse{data=dto.QueueStatsDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /queues/{id}/stats [get]
func (h *QueueHandler) GetQueueStats(c *gin.Context) {
	queueID, err := utils.ParseUintParam(c, "id", "queue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatsUC.Execute(c.Request.Context(), queueID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
