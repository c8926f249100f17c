package maintenance

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusfix/internal/shared/errors"
)

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type SubmitCompletionRequest struct {
	Notes  string   `json:"notes" binding:"required,max=5000"`
	Images []string `json:"images" binding:"omitempty,dive,url"`
}

type SaveMaintenanceDraftRequest struct {
	Description string   `json:"description" binding:"max=5000"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseReportID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid report ID")
	}
	return uint(id), nil
}
