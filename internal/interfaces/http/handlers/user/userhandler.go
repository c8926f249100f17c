package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusfix/internal/application/user/usecases"
	"campusfix/internal/interfaces/http/handlers/common"
	"campusfix/internal/shared/logger"
	"campusfix/internal/shared/utils"
)

type UserHandler struct {
	listTechniciansUC usecases.ListTechniciansExecutor
	logger            logger.Interface
}

func NewUserHandler(listTechniciansUC usecases.ListTechniciansExecutor) *UserHandler {
	return &UserHandler{
		listTechniciansUC: listTechniciansUC,
		logger:            logger.NewLogger(),
	}
}

// ListTechnicians handles GET /users/technicians
func (h *UserHandler) ListTechnicians(c *gin.Context) {
	userID, role := common.Identity(c)
	result, err := h.listTechniciansUC.Execute(c.Request.Context(), usecases.ListTechniciansQuery{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
