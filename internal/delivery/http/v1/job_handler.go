package v1

import (
	"net/http"
	"strconv"
	"time"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type JobHandler struct {
	jobUC domain.JobListingUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobListingUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - seeker-facing browsing of the active window
	publicListings := public.Group("/listings")
	{
		publicListings.GET("/active", handler.ListActive)
		publicListings.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes
	listings := protected.Group("/listings")
	{
		listings.GET("", handler.List)
		listings.GET("/paged", handler.ListPaged)
		listings.GET("/mine", handler.ListMine)
		listings.POST("", handler.Create)
		listings.PUT("/:id", handler.Update)
		listings.DELETE("/:id", handler.Delete)
	}
}

type CreateListingRequest struct {
	JobTitle       string `json:"job_title" binding:"required"`
	CompanyName    string `json:"company_name" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
	StartDate      string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" binding:"required,datetime=2006-01-02"`
	JobType        string `json:"job_type" binding:"required,oneof=full-time part-time freelance"`
	Email          string `json:"email" binding:"required,email"`
}

type UpdateListingRequest struct {
	JobTitle       *string `json:"job_title"`
	CompanyName    *string `json:"company_name"`
	JobDescription *string `json:"job_description"`
	StartDate      *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	JobType        *string `json:"job_type" binding:"omitempty,oneof=full-time part-time freelance"`
	Email          *string `json:"email" binding:"omitempty,email"`
}

// Create godoc
// @Summary      Create a job listing
// @Description  Create a new job posting (employer only)
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        body  body      CreateListingRequest  true  "Listing JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /listings [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can create job listings"))
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	listing := &domain.JobListing{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		StartDate:      startDate,
		EndDate:        endDate,
		JobType:        req.JobType,
		Email:          req.Email,
		UserID:         c.GetInt64(string(domain.KeyUserID)),
	}

	created, err := h.jobUC.CreateListing(c.Request.Context(), listing)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job listing created", created)
}

// ListActive godoc
// @Summary      List active listings (public)
// @Description  Listings inside their browsing window: start date inclusive, end date exclusive
// @Tags         listings
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /listings/active [get]
func (h *JobHandler) ListActive(c *gin.Context) {
	listings, err := h.jobUC.ListActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Active job listings", listings)
}

// List godoc
// @Summary      List all listings
// @Tags         listings
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /listings [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	listings, err := h.jobUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job listings", listings)
}

// ListPaged godoc
// @Summary      List listings with pagination
// @Description  Optional email filter narrows to one employer's postings
// @Tags         listings
// @Produce      json
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Param        email  query     string  false  "Posting email filter"
// @Success      200    {object}  response.Response
// @Router       /listings/paged [get]
// @Security     BearerAuth
func (h *JobHandler) ListPaged(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	email := c.Query("email")

	result, err := h.jobUC.ListPaged(c.Request.Context(), email, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job listings", result)
}

// ListMine godoc
// @Summary      List an employer's own postings
// @Description  Every posting for the email, regardless of the active window
// @Tags         listings
// @Produce      json
// @Param        email  query     string  true  "Posting email"
// @Success      200    {object}  response.Response
// @Router       /listings/mine [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString(string(domain.KeyUserEmail))
	}

	listings, err := h.jobUC.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job listings", listings)
}

// GetDetails godoc
// @Summary      Get listing details
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /listings/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	listing, err := h.jobUC.GetDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", listing)
}

// Update godoc
// @Summary      Update a job listing
// @Description  Partial update: absent fields are dropped before the update is applied
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Listing ID"
// @Param        body  body      UpdateListingRequest  true  "Partial listing JSON"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /listings/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can update job listings"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := &domain.JobListingUpdate{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		JobType:        req.JobType,
		Email:          req.Email,
	}
	if req.StartDate != nil {
		t, _ := time.Parse(dateLayout, *req.StartDate)
		upd.StartDate = &t
	}
	if req.EndDate != nil {
		t, _ := time.Parse(dateLayout, *req.EndDate)
		upd.EndDate = &t
	}

	listing, err := h.jobUC.UpdateListing(c.Request.Context(), id, upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job listing updated", listing)
}

// Delete godoc
// @Summary      Delete a job listing
// @Description  Does not cascade to existing applications
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /listings/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can delete job listings"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	message, err := h.jobUC.DeleteListing(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}
