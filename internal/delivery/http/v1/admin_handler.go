package v1

import (
	"net/http"
	"strconv"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/users", handler.ListUsers)
		admin.PATCH("/users/:id/block", handler.ToggleBlock)
	}
}

// ListUsers godoc
// @Summary      List accounts (admin)
// @Description  Paginated account list for administrative review
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.adminUC.ListUsers(requestContext(c), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", result)
}

// ToggleBlock godoc
// @Summary      Block or unblock an account (admin)
// @Description  Toggles the blocked flag; calling twice restores the original state
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id}/block [patch]
// @Security     BearerAuth
func (h *AdminHandler) ToggleBlock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	user, err := h.adminUC.ToggleBlock(requestContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	message := "User blocked"
	if !user.Blocked {
		message = "User unblocked"
	}
	response.Success(c, http.StatusOK, message, user)
}
