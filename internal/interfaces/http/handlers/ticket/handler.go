package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/application/ticket/dto"
	"github.com/supporthub/supporthub/internal/application/ticket/usecases"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/errors"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	assignTicketUC usecases.AssignTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		assignTicketUC: assignTicketUC,
		logger:         logger,
	}
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Description Newest-updated first, at most 200 rows
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param assigned_to query string false "Only tickets assigned to the caller" Enums(me)
// @Param queue_id query int false "Queue ID"
// @Param status query string false "Status" Enums(open, pending, resolved, closed)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.TicketListItemDTO}}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// UpdateTicket handles PATCH /tickets/:id
// @Summary Update ticket status, priority or category
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param ticket body dto.UpdateTicketRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID: ticketID,
		Status:   req.Status,
		Priority: req.Priority,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AssignTicket handles POST /tickets/:id/assign
// @Summary Move a ticket to a queue and/or agent
// @Description Supervisor override. An explicit agent ignores capacity limits.
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param assignment body dto.AssignTicketRequest true "Target queue and/or agent"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/assign [post]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AssignTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for assign ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:    ticketID,
		QueueID:     req.QueueID,
		AgentUserID: req.AgentUserID,
		AssignedBy:  c.GetString(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{
		UserID: c.GetString(constants.ContextKeyUserID),
	}

	switch assignedTo := c.Query("assigned_to"); assignedTo {
	case "":
	case "me":
		if query.UserID == "" {
			return query, errors.NewUnauthorizedError("authentication required")
		}
		query.AssignedToMe = true
	default:
		return query, errors.NewValidationError("invalid assigned_to", "only \"me\" is supported")
	}

	queueID, err := utils.ParseOptionalUintQuery(c, "queue_id")
	if err != nil {
		return query, err
	}
	query.QueueID = queueID

	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	return query, nil
}
