package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/application/routing/dto"
	"github.com/supporthub/supporthub/internal/application/routing/usecases"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

// RoutingRuleHandler manages the ordered rule list the routing engine reads
// on every ingestion.
type RoutingRuleHandler struct {
	listRulesUC  usecases.ListRulesExecutor
	createRuleUC usecases.CreateRuleExecutor
	updateRuleUC usecases.UpdateRuleExecutor
	logger       logger.Interface
}

func NewRoutingRuleHandler(
	listRulesUC usecases.ListRulesExecutor,
	createRuleUC usecases.CreateRuleExecutor,
	updateRuleUC usecases.UpdateRuleExecutor,
	logger logger.Interface,
) *RoutingRuleHandler {
	return &RoutingRuleHandler{
		listRulesUC:  listRulesUC,
		createRuleUC: createRuleUC,
		updateRuleUC: updateRuleUC,
		logger:       logger,
	}
}

// ListRules handles GET /routing-rules
// @Summary List routing rules in evaluation order
// @Tags routing
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.RuleDTO}}
// @Failure 403 {object} utils.APIResponse
// @Router /routing-rules [get]
func (h *RoutingRuleHandler) ListRules(c *gin.Context) {
	result, err := h.listRulesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// CreateRule handles POST /routing-rules
// @Summary Create a routing rule
// @Description Condition and action are JSON text. Malformed JSON is stored as an empty object.
// @Tags routing
// @Accept json
// @Produce json
// @Security Bearer
// @Param rule body dto.CreateRuleRequest true "Rule"
// @Success 201 {object} utils.APIResponse{data=dto.RuleDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /routing-rules [post]
func (h *RoutingRuleHandler) CreateRule(c *gin.Context) {
	var req dto.CreateRuleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create routing rule", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRuleUC.Execute(c.Request.Context(), usecases.CreateRuleCommand{
		Name:          req.Name,
		PriorityOrder: req.PriorityOrder,
		ConditionJSON: req.ConditionJSON,
		ActionJSON:    req.ActionJSON,
		IsEnabled:     req.IsEnabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Routing rule created successfully")
}

// UpdateRule handles PATCH /routing-rules/:id
// @Summary Update a routing rule
// @Tags routing
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Rule ID"
// @Param rule body dto.UpdateRuleRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.RuleDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routing-rules/{id} [patch]
func (h *RoutingRuleHandler) UpdateRule(c *gin.Context) {
	ruleID, err := utils.ParseUintParam(c, "id", "routing rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateRuleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update routing rule", "rule_id", ruleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateRuleUC.Execute(c.Request.Context(), usecases.UpdateRuleCommand{
		RuleID:        ruleID,
		Name:          req.Name,
		PriorityOrder: req.PriorityOrder,
		ConditionJSON: req.ConditionJSON,
		ActionJSON:    req.ActionJSON,
		IsEnabled:     req.IsEnabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Routing rule updated successfully", result)
}
