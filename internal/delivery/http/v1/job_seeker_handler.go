package v1

import (
	"net/http"
	"strconv"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobSeekerHandler struct {
	profileUC domain.JobSeekerUsecase
}

func NewJobSeekerHandler(protected *gin.RouterGroup, profileUC domain.JobSeekerUsecase) {
	handler := &JobSeekerHandler{profileUC: profileUC}

	seekers := protected.Group("/job-seekers")
	{
		seekers.GET("/profile", handler.GetProfile)
		seekers.POST("/profile", handler.CreateProfile)
		seekers.PUT("/profile/:id", handler.UpdateProfile)
	}
}

type JobSeekerProfileRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Email       string                   `json:"email" binding:"required,email"`
	Mobile      string                   `json:"mobile"`
	Gender      string                   `json:"gender"`
	Address     string                   `json:"address"`
	Nationality string                   `json:"nationality"`
	Languages   []string                 `json:"languages"`
	Experience  []domain.ExperienceEntry `json:"experience"`
	Education   []domain.EducationEntry  `json:"education"`
}

func (r *JobSeekerProfileRequest) toDomain() *domain.JobSeekerProfile {
	return &domain.JobSeekerProfile{
		Name:        r.Name,
		Email:       r.Email,
		Mobile:      r.Mobile,
		Gender:      r.Gender,
		Address:     r.Address,
		Nationality: r.Nationality,
		Languages:   r.Languages,
		Experience:  r.Experience,
		Education:   r.Education,
	}
}

// GetProfile godoc
// @Summary      Get job seeker profile by email
// @Description  Returns null data when no profile exists for the email
// @Tags         job-seekers
// @Produce      json
// @Param        email  query     string  true  "Profile email"
// @Success      200    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /job-seekers/profile [get]
// @Security     BearerAuth
func (h *JobSeekerHandler) GetProfile(c *gin.Context) {
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

	if profile == nil {
		response.Success(c, http.StatusOK, "No profile found", nil)
		return
	}
	response.Success(c, http.StatusOK, "Job seeker profile", profile)
}

// CreateProfile godoc
// @Summary      Create job seeker profile
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        body  body      JobSeekerProfileRequest  true  "Profile JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /job-seekers/profile [post]
// @Security     BearerAuth
func (h *JobSeekerHandler) CreateProfile(c *gin.Context) {
	var req JobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.CreateProfile(c.Request.Context(), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// UpdateProfile godoc
// @Summary      Update job seeker profile
// @Description  Fully replaces the stored profile, including the experience and education sequences. Creates a new profile when the id does not resolve.
// @Tags         job-seekers
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Profile ID"
// @Param        body  body      JobSeekerProfileRequest  true  "Profile JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /job-seekers/profile/{id} [put]
// @Security     BearerAuth
func (h *JobSeekerHandler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req JobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := req.toDomain()
	profile.ID = id

	updated, err := h.profileUC.UpdateProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", updated)
}
