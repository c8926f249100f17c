package maintenance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	draftusecases "campusfix/internal/application/draft/usecases"
	"campusfix/internal/application/maintenance/usecases"
	"campusfix/internal/interfaces/http/handlers/common"
	"campusfix/internal/shared/logger"
	"campusfix/internal/shared/utils"
)

type MaintenanceHandler struct {
	assignTechnicianUC usecases.AssignTechnicianExecutor
	submitCompletionUC usecases.SubmitCompletionExecutor
	verifyCompletionUC usecases.VerifyCompletionExecutor
	listTasksUC        usecases.ListTasksExecutor
	getTaskUC          usecases.GetTaskExecutor
	draftUC            *draftusecases.MaintenanceDraftUseCase
	logger             logger.Interface
}

func NewMaintenanceHandler(
	assignTechnicianUC usecases.AssignTechnicianExecutor,
	submitCompletionUC usecases.SubmitCompletionExecutor,
	verifyCompletionUC usecases.VerifyCompletionExecutor,
	listTasksUC usecases.ListTasksExecutor,
	getTaskUC usecases.GetTaskExecutor,
	draftUC *draftusecases.MaintenanceDraftUseCase,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		assignTechnicianUC: assignTechnicianUC,
		submitCompletionUC: submitCompletionUC,
		verifyCompletionUC: verifyCompletionUC,
		listTasksUC:        listTasksUC,
		getTaskUC:          getTaskUC,
		draftUC:            draftUC,
		logger:             logger.NewLogger(),
	}
}

// AssignTechnician handles POST /reports/:id/assign
func (h *MaintenanceHandler) AssignTechnician(c *gin.Context) {
	reportID, err := parseReportID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign technician", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, role := common.Identity(c)
	result, err := h.assignTechnicianUC.Execute(c.Request.Context(), usecases.AssignTechnicianCommand{
		ReportID:     reportID,
		TechnicianID: req.TechnicianID,
		AssignedBy:   userID,
		Role:         role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Technician assigned successfully")
}

// SubmitCompletion handles POST /tasks/:id/complete
func (h *MaintenanceHandler) SubmitCompletion(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit completion", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, role := common.Identity(c)
	result, err := h.submitCompletionUC.Execute(c.Request.Context(), usecases.SubmitCompletionCommand{
		TicketID:     ticketID,
		TechnicianID: userID,
		Role:         role,
		Notes:        req.Notes,
		Images:       req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Completion submitted successfully", result)
}

// VerifyCompletion handles POST /tasks/:id/verify
func (h *MaintenanceHandler) VerifyCompletion(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := common.Identity(c)
	result, err := h.verifyCompletionUC.Execute(c.Request.Context(), usecases.VerifyCompletionCommand{
		TicketID:   ticketID,
		VerifiedBy: userID,
		Role:       role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Completion verified successfully", result)
}

// ListTasks handles GET /tasks
func (h *MaintenanceHandler) ListTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	userID, role := common.Identity(c)
	result, err := h.listTasksUC.Execute(c.Request.Context(), usecases.ListTasksQuery{
		TechnicianID: userID,
		Role:         role,
		Status:       c.Query("status"),
		Page:         page,
		PageSize:     pageSize,
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, result.Page, pageSize)
}

// GetTask handles GET /tasks/:id
func (h *MaintenanceHandler) GetTask(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := common.Identity(c)
	result, err := h.getTaskUC.Execute(c.Request.Context(), usecases.GetTaskQuery{
		TicketID: ticketID,
		UserID:   userID,
		Role:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SaveDraft handles PUT /tasks/:id/draft
func (h *MaintenanceHandler) SaveDraft(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveMaintenanceDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, role := common.Identity(c)
	err = h.draftUC.Save(c.Request.Context(), draftusecases.SaveMaintenanceDraftCommand{
		TechnicianID: userID,
		Role:         role,
		TicketID:     ticketID,
		Description:  req.Description,
		Images:       req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft saved", nil)
}

// GetDraft handles GET /tasks/:id/draft
func (h *MaintenanceHandler) GetDraft(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := common.Identity(c)
	draft, err := h.draftUC.Get(c.Request.Context(), draftusecases.MaintenanceDraftQuery{
		TechnicianID: userID,
		Role:         role,
		TicketID:     ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// ClearDraft handles DELETE /tasks/:id/draft
func (h *MaintenanceHandler) ClearDraft(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := common.Identity(c)
	err = h.draftUC.Clear(c.Request.Context(), draftusecases.MaintenanceDraftQuery{
		TechnicianID: userID,
		Role:         role,
		TicketID:     ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
