package report

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusfix/internal/shared/errors"
)

type SubmitReportRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=5000"`
	Location    string   `json:"location" binding:"required,max=255"`
	Priority    string   `json:"priority" binding:"required,oneof=low medium high"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

type SaveReportDraftRequest struct {
	Title       string   `json:"title" binding:"max=200"`
	Description string   `json:"description" binding:"max=5000"`
	Location    string   `json:"location" binding:"max=255"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

func parseReportID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid report ID")
	}
	return uint(id), nil
}
