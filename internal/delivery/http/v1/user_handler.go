package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxPhotoUploadBytes caps profile photo uploads.
const maxPhotoUploadBytes = 5 << 20

type UserHandler struct {
	profileUC domain.ProfileUsecase
	followUC  domain.FollowUsecase
}

func NewUserHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, followUC domain.FollowUsecase) {
	handler := &UserHandler{
		profileUC: profileUC,
		followUC:  followUC,
	}

	profile := protected.Group("/profile")
	{
		profile.GET("/:id", handler.GetProfile)
		profile.PUT("", handler.UpdateProfile)
		profile.PUT("/skills", handler.UpdateSkills)
		profile.POST("/photo", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.UploadPhoto)

		profile.POST("/educations", handler.AddEducation)
		profile.PUT("/educations/:id", handler.UpdateEducation)
		profile.DELETE("/educations/:id", handler.DeleteEducation)

		profile.POST("/experiences", handler.AddExperience)
		profile.PUT("/experiences/:id", handler.UpdateExperience)
		profile.DELETE("/experiences/:id", handler.DeleteExperience)
	}

	users := protected.Group("/users")
	{
		users.POST("/:id/follow", handler.Follow)
		users.GET("/:id/follow", handler.FollowStatus)
		users.DELETE("/:id/follow", handler.Unfollow)
		users.GET("/:id/followers", handler.Followers)
		users.GET("/:id/following", handler.Following)
	}
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,valid_name"`
	LastName  string `json:"last_name" binding:"omitempty,valid_name"`
	Country   string `json:"country" binding:"max=100"`
	Bio       string `json:"bio" binding:"max=2000"`
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" binding:"required,skill_list"`
}

// GetProfile godoc
// @Summary      Get Profile
// @Description  Get a user's profile with educations and experiences
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Description  Update the authenticated user's profile fields
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		ID:        c.GetString(string(domain.KeyUserID)),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
		Bio:       req.Bio,
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", nil)
}

// UpdateSkills godoc
// @Summary      Update Skills
// @Description  Replace the authenticated user's skill list
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        skills  body      UpdateSkillsRequest  true  "Skills"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/skills [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.profileUC.UpdateSkills(c.Request.Context(), userID, req.Skills); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", gin.H{"skills": req.Skills})
}

// UploadPhoto godoc
// @Summary      Upload Profile Photo
// @Description  Upload a profile photo (JPEG or PNG, max 5MB). The image is resized server-side.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Photo file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/photo [post]
// @Security     BearerAuth
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.Error(apperror.BadRequest("Photo file is required"))
		return
	}
	if file.Size > maxPhotoUploadBytes {
		c.Error(apperror.BadRequest("Photo must be smaller than 5MB"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPhotoUploadBytes))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	url, err := h.profileUC.UpdatePhoto(c.Request.Context(), userID, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo updated", gin.H{"photo_url": url})
}

// AddEducation godoc
// @Summary      Add Education
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        education  body      domain.Education  true  "Education entry"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/educations [post]
// @Security     BearerAuth
func (h *UserHandler) AddEducation(c *gin.Context) {
	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	edu.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddEducation(c.Request.Context(), &edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added", edu)
}

// UpdateEducation godoc
// @Summary      Update Education
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Education ID"
// @Param        education  body      domain.Education  true  "Education entry"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/educations/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	edu.ID = id
	edu.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpdateEducation(c.Request.Context(), &edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", edu)
}

// DeleteEducation godoc
// @Summary      Delete Education
// @Tags         profile
// @Produce      json
// @Param        id   path      int  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/educations/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.profileUC.DeleteEducation(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted", nil)
}

// AddExperience godoc
// @Summary      Add Experience
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        experience  body      domain.Experience  true  "Experience entry"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profile/experiences [post]
// @Security     BearerAuth
func (h *UserHandler) AddExperience(c *gin.Context) {
	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	exp.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddExperience(c.Request.Context(), &exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", exp)
}

// UpdateExperience godoc
// @Summary      Update Experience
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id          path      int                true  "Experience ID"
// @Param        experience  body      domain.Experience  true  "Experience entry"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/experiences/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	exp.ID = id
	exp.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpdateExperience(c.Request.Context(), &exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", exp)
}

// DeleteExperience godoc
// @Summary      Delete Experience
// @Tags         profile
// @Produce      json
// @Param        id   path      int  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/experiences/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.profileUC.DeleteExperience(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

// Follow godoc
// @Summary      Follow User
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/follow [post]
// @Security     BearerAuth
func (h *UserHandler) Follow(c *gin.Context) {
	followerID := c.GetString(string(domain.KeyUserID))
	if err := h.followUC.Follow(c.Request.Context(), followerID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Now following", nil)
}

// FollowStatus godoc
// @Summary      Follow Status
// @Description  Whether the authenticated user follows the given user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/follow [get]
// @Security     BearerAuth
func (h *UserHandler) FollowStatus(c *gin.Context) {
	followerID := c.GetString(string(domain.KeyUserID))
	following, err := h.followUC.IsFollowing(c.Request.Context(), followerID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Follow status", gin.H{"following": following})
}

// Unfollow godoc
// @Summary      Unfollow User
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/follow [delete]
// @Security     BearerAuth
func (h *UserHandler) Unfollow(c *gin.Context) {
	followerID := c.GetString(string(domain.KeyUserID))
	if err := h.followUC.Unfollow(c.Request.Context(), followerID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unfollowed", nil)
}

// Followers godoc
// @Summary      List Followers
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/followers [get]
// @Security     BearerAuth
func (h *UserHandler) Followers(c *gin.Context) {
	users, err := h.followUC.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Followers", users)
}

// Following godoc
// @Summary      List Following
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id}/following [get]
// @Security     BearerAuth
func (h *UserHandler) Following(c *gin.Context) {
	users, err := h.followUC.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Following", users)
}
