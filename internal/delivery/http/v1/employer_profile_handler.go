package v1

import (
	"net/http"
	"strconv"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerProfileHandler struct {
	profileUC domain.EmployerProfileUsecase
}

func NewEmployerProfileHandler(protected *gin.RouterGroup, profileUC domain.EmployerProfileUsecase) {
	handler := &EmployerProfileHandler{profileUC: profileUC}

	employers := protected.Group("/employers")
	{
		employers.GET("/profile", handler.GetProfile)
		employers.POST("/profile", handler.CreateProfile)
		employers.PUT("/profile/:id", handler.UpdateProfile)
	}
}

type CreateEmployerProfileRequest struct {
	EmployerName     string `json:"employer_name" binding:"required"`
	CompanyName      string `json:"company_name" binding:"required"`
	AboutCompany     string `json:"about_company" binding:"required"`
	CompanyStartDate string `json:"company_start_date" binding:"required"`
	Location         string `json:"location" binding:"required"`
	EmployerEmail    string `json:"employer_email" binding:"required,email"`
}

type UpdateEmployerProfileRequest struct {
	EmployerName     *string `json:"employer_name"`
	CompanyName      *string `json:"company_name"`
	AboutCompany     *string `json:"about_company"`
	CompanyStartDate *string `json:"company_start_date"`
	Location         *string `json:"location"`
}

// GetProfile godoc
// @Summary      Get employer profile by email
// @Tags         employers
// @Produce      json
// @Param        email  query     string  true  "Employer email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /employers/profile [get]
// @Security     BearerAuth
func (h *EmployerProfileHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Error(apperror.BadRequest("email query parameter is required"))
		return
	}

	profile, err := h.profileUC.GetProfileByEmail(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}

// CreateProfile godoc
// @Summary      Create employer profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        body  body      CreateEmployerProfileRequest  true  "Profile JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /employers/profile [post]
// @Security     BearerAuth
func (h *EmployerProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateEmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.CreateProfile(c.Request.Context(), &domain.EmployerProfile{
		EmployerName:     req.EmployerName,
		CompanyName:      req.CompanyName,
		AboutCompany:     req.AboutCompany,
		CompanyStartDate: req.CompanyStartDate,
		Location:         req.Location,
		EmployerEmail:    req.EmployerEmail,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// UpdateProfile godoc
// @Summary      Update employer profile
// @Description  Only supplied fields overwrite existing ones (partial merge)
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true  "Profile ID"
// @Param        body  body      UpdateEmployerProfileRequest  true  "Partial profile JSON"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/profile/{id} [put]
// @Security     BearerAuth
func (h *EmployerProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateEmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), id, &domain.EmployerProfileUpdate{
		EmployerName:     req.EmployerName,
		CompanyName:      req.CompanyName,
		AboutCompany:     req.AboutCompany,
		CompanyStartDate: req.CompanyStartDate,
		Location:         req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}
