package v1

import (
	"net/http"
	"strconv"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.JobApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.JobApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("", handler.ListAll)
		applications.GET("/employer", handler.ListForEmployer)
		applications.GET("/job-seeker", handler.ListForJobSeeker)
		applications.DELETE("/:id", handler.Delete)
	}
}

type ApplyRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  A job seeker may apply to a given listing at most once; the second attempt fails with a conflict even under concurrent applies
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application JSON"
// @Success      201   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can apply to jobs"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	jobSeekerEmail := c.GetString(string(domain.KeyUserEmail))

	app, err := h.applicationUC.Apply(c.Request.Context(), jobSeekerEmail, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListAll godoc
// @Summary      List all applications (admin)
// @Description  Every application joined with its listing and the applicant's profile, most recent first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.applicationUC.ListAll(requestContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// ListForEmployer godoc
// @Summary      List applications for an employer
// @Tags         applications
// @Produce      json
// @Param        email  query     string  false  "Employer email (defaults to the caller)"
// @Success      200    {object}  response.Response
// @Router       /applications/employer [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString(string(domain.KeyUserEmail))
	}

	apps, err := h.applicationUC.ListForEmployer(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// ListForJobSeeker godoc
// @Summary      List a job seeker's own applications
// @Tags         applications
// @Produce      json
// @Param        email  query     string  false  "Job seeker email (defaults to the caller)"
// @Success      200    {object}  response.Response
// @Router       /applications/job-seeker [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJobSeeker(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString(string(domain.KeyUserEmail))
	}

	apps, err := h.applicationUC.ListForJobSeeker(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// Delete godoc
// @Summary      Delete an application
// @Description  The employer's reject/withdraw action
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can delete applications"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	result, err := h.applicationUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}
