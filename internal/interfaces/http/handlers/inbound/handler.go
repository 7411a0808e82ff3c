package inbound

import (
	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/application/inbound/dto"
	"github.com/supporthub/supporthub/internal/application/inbound/usecases"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

// InboundHandler serves the unauthenticated channel adapters and the guest
// chat widget.
type InboundHandler struct {
	ingestUC       usecases.IngestInboundExecutor
	guestMessageUC usecases.PostGuestMessageExecutor
	logger         logger.Interface
}

func NewInboundHandler(
	ingestUC usecases.IngestInboundExecutor,
	guestMessageUC usecases.PostGuestMessageExecutor,
	logger logger.Interface,
) *InboundHandler {
	return &InboundHandler{
		ingestUC:       ingestUC,
		guestMessageUC: guestMessageUC,
		logger:         logger,
	}
}

// Ingest handles POST /inbound/:channel
// @Summary Ingest an inbound customer message
// @Description Accepts a chat, email or sms message, then deduplicates the customer, routes the ticket and assigns an agent
// @Tags inbound
// @Accept json
// @Produce json
// @Param channel path string true "Channel" Enums(chat, email, sms)
// @Param message body dto.InboundMessageRequest true "Inbound message"
// @Success 201 {object} utils.APIResponse{data=dto.InboundResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /inbound/{channel} [post]
func (h *InboundHandler) Ingest(c *gin.Context) {
	channel := c.Param("channel")

	var req dto.InboundMessageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for inbound message", "channel", channel, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ingestUC.Execute(c.Request.Context(), usecases.IngestInboundCommand{
		Channel:   channel,
		From:      req.From,
		Customer:  req.Customer,
		Subject:   req.Subject,
		Body:      req.Body,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message accepted")
}

// PostGuestMessage handles POST /guest/conversations/:id/messages
// @Summary Post a guest follow-up message
// @Description Appends an inbound message from the guest chat widget to an existing conversation
// @Tags inbound
// @Accept json
// @Produce json
// @Param id path int true "Conversation ID"
// @Param message body dto.GuestMessageRequest true "Message"
// @Success 201 {object} utils.APIResponse{data=dto.GuestMessageResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /guest/conversations/{id}/messages [post]
func (h *InboundHandler) PostGuestMessage(c *gin.Context) {
	conversationID, err := utils.ParseUintParam(c, "id", "conversation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.GuestMessageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for guest message", "conversation_id", conversationID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.guestMessageUC.Execute(c.Request.Context(), usecases.PostGuestMessageCommand{
		ConversationID: conversationID,
		Body:           req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}
