package conversation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/application/conversation/dto"
	"github.com/supporthub/supporthub/internal/application/conversation/usecases"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

type ConversationHandler struct {
	getConversationUC usecases.GetConversationExecutor
	sendReplyUC       usecases.SendAgentReplyExecutor
	logger            logger.Interface
}

func NewConversationHandler(
	getConversationUC usecases.GetConversationExecutor,
	sendReplyUC usecases.SendAgentReplyExecutor,
	logger logger.Interface,
) *ConversationHandler {
	return &ConversationHandler{
		getConversationUC: getConversationUC,
		sendReplyUC:       sendReplyUC,
		logger:            logger,
	}
}

// GetTicketConversation handles GET /tickets/:id/conversation
// @Summary Get the conversation behind a ticket
// @Description Messages oldest first, each with a sanitized HTML rendering of its body
// @Tags conversations
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.ConversationViewDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/conversation [get]
func (h *ConversationHandler) GetTicketConversation(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getConversationUC.Execute(c.Request.Context(), usecases.GetConversationQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SendReply handles POST /conversations/:id/messages
// @Summary Reply to the customer
// @Description Appends an outbound message signed by the calling agent; email conversations are also mailed
// @Tags conversations
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Conversation ID"
// @Param reply body dto.SendReplyRequest true "Reply"
// @Success 201 {object} utils.APIResponse{data=dto.ReplyResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) SendReply(c *gin.Context) {
	conversationID, err := utils.ParseUintParam(c, "id", "conversation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SendReplyRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for agent reply", "conversation_id", conversationID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendReplyUC.Execute(c.Request.Context(), usecases.SendAgentReplyCommand{
		ConversationID: conversationID,
		AgentUserID:    c.GetString(constants.ContextKeyUserID),
		AgentName:      c.GetString(constants.ContextKeyUserName),
		Body:           req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply sent")
}
