package report

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	draftusecases "campusfix/internal/application/draft/usecases"
	"campusfix/internal/application/report/usecases"
	"campusfix/internal/interfaces/http/handlers/common"
	"campusfix/internal/shared/logger"
	"campusfix/internal/shared/utils"
)

type ReportHandler struct {
	submitReportUC usecases.SubmitReportExecutor
	getReportUC    usecases.GetReportExecutor
	listReportsUC  usecases.ListReportsExecutor
	draftUC        *draftusecases.ReportDraftUseCase
	logger         logger.Interface
}

func NewReportHandler(
	submitReportUC usecases.SubmitReportExecutor,
	getReportUC usecases.GetReportExecutor,
	listReportsUC usecases.ListReportsExecutor,
	draftUC *draftusecases.ReportDraftUseCase,
) *ReportHandler {
	return &ReportHandler{
		submitReportUC: submitReportUC,
		getReportUC:    getReportUC,
		listReportsUC:  listReportsUC,
		draftUC:        draftUC,
		logger:         logger.NewLogger(),
	}
}

// SubmitReport handles POST /reports
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit report", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, role := common.Identity(c)
	result, err := h.submitReportUC.Execute(c.Request.Context(), usecases.SubmitReportCommand{
		ReporterID:  userID,
		Role:        role,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    req.Priority,
		Images:      req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Report submitted successfully")
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	reportID, err := parseReportID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := common.Identity(c)
	result, err := h.getReportUC.Execute(c.Request.Context(), usecases.GetReportQuery{
		ReportID: reportID,
		UserID:   userID,
		Role:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	userID, role := common.Identity(c)
	result, err := h.listReportsUC.Execute(c.Request.Context(), usecases.ListReportsQuery{
		UserID:    userID,
		Role:      role,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reports, result.Total, result.Page, pageSize)
}

// SaveDraft handles PUT /reports/draft
func (h *ReportHandler) SaveDraft(c *gin.Context) {
	var req SaveReportDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, role := common.Identity(c)
	err := h.draftUC.Save(c.Request.Context(), draftusecases.SaveReportDraftCommand{
		ReporterID:  userID,
		Role:        role,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    req.Priority,
		Images:      req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft saved", nil)
}

// GetDraft handles GET /reports/draft
func (h *ReportHandler) GetDraft(c *gin.Context) {
	userID, role := common.Identity(c)
	draft, err := h.draftUC.Get(c.Request.Context(), draftusecases.ReportDraftQuery{
		ReporterID: userID,
		Role:       role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// ClearDraft handles DELETE /reports/draft
func (h *ReportHandler) ClearDraft(c *gin.Context) {
	userID, role := common.Identity(c)
	err := h.draftUC.Clear(c.Request.Context(), draftusecases.ReportDraftQuery{
		ReporterID: userID,
		Role:       role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
