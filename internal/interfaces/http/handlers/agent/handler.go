package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/application/agent/dto"
	"github.com/supporthub/supporthub/internal/application/agent/usecases"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

type AgentHandler struct {
	listAgentsUC     usecases.ListAgentsExecutor
	updatePresenceUC usecases.UpdatePresenceExecutor
	logger           logger.Interface
}

func NewAgentHandler(
	listAgentsUC usecases.ListAgentsExecutor,
	updatePresenceUC usecases.UpdatePresenceExecutor,
	logger logger.Interface,
) *AgentHandler {
	return &AgentHandler{
		listAgentsUC:     listAgentsUC,
		updatePresenceUC: updatePresenceUC,
		logger:           logger,
	}
}

// ListAgents handles GET /agents
// @Summary List agents with presence and load
// @Tags agents
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.AgentDTO}}
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// UpdateMyPresence handles PATCH /agents/me/presence
// @Summary Set the caller's presence
// @Tags agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param presence body dto.UpdatePresenceRequest true "available, busy or offline"
// @Success 200 {object} utils.APIResponse{data=dto.AgentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agents/me/presence [patch]
func (h *AgentHandler) UpdateMyPresence(c *gin.Context) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdatePresenceRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for presence update", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePresenceUC.Execute(c.Request.Context(), usecases.UpdatePresenceCommand{
		UserID:   userID,
		Presence: req.Presence,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Presence updated", result)
}
