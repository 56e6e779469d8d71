package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUC domain.InteractionUsecase
}

func NewInteractionHandler(protected *gin.RouterGroup, interactionUC domain.InteractionUsecase) {
	handler := &InteractionHandler{interactionUC: interactionUC}

	posts := protected.Group("/posts")
	{
		posts.POST("/:id/apply", handler.ToggleApplication)
		posts.POST("/:id/interest", handler.ToggleInterest)
		posts.POST("/:id/approve/:userId", handler.Approve)
		posts.POST("/:id/decline/:userId", handler.Decline)
		posts.DELETE("/:id/application", handler.RemoveApplication)
		posts.GET("/:id/applicants", handler.ListInteractions)
	}
}

// ToggleApplication godoc
// @Summary      Toggle Application
// @Description  Apply to a post, or withdraw a pending application. Re-applying after a decline clears it.
// @Tags         interactions
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/apply [post]
// @Security     BearerAuth
func (h *InteractionHandler) ToggleApplication(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	viewerID := c.GetString(string(domain.KeyUserID))
	state, err := h.interactionUC.ToggleApplication(c.Request.Context(), viewerID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", gin.H{"state": state})
}

// ToggleInterest godoc
// @Summary      Toggle Interest
// @Description  Mark or unmark interest in a post
// @Tags         interactions
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/interest [post]
// @Security     BearerAuth
func (h *InteractionHandler) ToggleInterest(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	viewerID := c.GetString(string(domain.KeyUserID))
	interested, err := h.interactionUC.ToggleInterest(c.Request.Context(), viewerID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interest updated", gin.H{"interested": interested})
}

// Approve godoc
// @Summary      Approve Applicant
// @Description  Approve an applicant on your post. Approving someone who never applied hires them directly.
// @Tags         interactions
// @Produce      json
// @Param        id      path      int     true  "Post ID"
// @Param        userId  path      string  true  "Applicant user ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/approve/{userId} [post]
// @Security     BearerAuth
func (h *InteractionHandler) Approve(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	if err := h.interactionUC.Approve(c.Request.Context(), ownerID, id, c.Param("userId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant approved", nil)
}

// Decline godoc
// @Summary      Decline Applicant
// @Description  Decline a pending application on your post
// @Tags         interactions
// @Produce      json
// @Param        id      path      int     true  "Post ID"
// @Param        userId  path      string  true  "Applicant user ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /posts/{id}/decline/{userId} [post]
// @Security     BearerAuth
func (h *InteractionHandler) Decline(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	if err := h.interactionUC.Decline(c.Request.Context(), ownerID, id, c.Param("userId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant declined", nil)
}

// RemoveApplication godoc
// @Summary      Remove Declined Application
// @Description  Dismiss your declined application so the post leaves your interactions list
// @Tags         interactions
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/application [delete]
// @Security     BearerAuth
func (h *InteractionHandler) RemoveApplication(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	viewerID := c.GetString(string(domain.KeyUserID))
	if err := h.interactionUC.RemoveApplication(c.Request.Context(), viewerID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application removed", nil)
}

// ListInteractions godoc
// @Summary      List Applicants
// @Description  List applicants and interested users on your post (owner only)
// @Tags         interactions
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/applicants [get]
// @Security     BearerAuth
func (h *InteractionHandler) ListInteractions(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	interactions, err := h.interactionUC.ListInteractions(c.Request.Context(), ownerID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post interactions", interactions)
}
