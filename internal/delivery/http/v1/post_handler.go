package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(protected *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	posts := protected.Group("/posts")
	{
		posts.POST("", handler.Create)
		posts.GET("", handler.ListOthers)
		posts.GET("/mine", handler.ListMine)
		posts.GET("/working", handler.ListWorking)
		posts.GET("/interactions", handler.ListInteracted)
		posts.GET("/:id", handler.Get)
		posts.PUT("/:id", handler.Update)
		posts.DELETE("/:id", handler.Delete)

		posts.POST("/:id/comments", handler.AddComment)
		posts.GET("/:id/comments", handler.ListComments)
	}
}

type PostRequest struct {
	Title          string   `json:"title" binding:"required,max=200"`
	Description    string   `json:"description" binding:"required,max=10000"`
	RequiredSkills []string `json:"required_skills" binding:"omitempty,skill_list"`
	RequiredTime   string   `json:"required_time" binding:"max=100"`
	Location       string   `json:"location" binding:"max=200"`
	Type           string   `json:"type" binding:"max=100"`
	Salary         string   `json:"salary" binding:"max=100"`
}

type CommentRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

func postIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid post ID"))
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}

// Create godoc
// @Summary      Create Post
// @Description  Create a job post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body      PostRequest  true  "Post JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /posts [post]
// @Security     BearerAuth
func (h *PostHandler) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	post := &domain.Post{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		RequiredTime:   req.RequiredTime,
		Location:       req.Location,
		Type:           req.Type,
		Salary:         req.Salary,
	}

	if err := h.postUC.CreatePost(c.Request.Context(), ownerID, post); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", post)
}

// Get godoc
// @Summary      Get Post
// @Description  Get a post with the viewer's interaction flags
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [get]
// @Security     BearerAuth
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	viewerID := c.GetString(string(domain.KeyUserID))
	view, err := h.postUC.GetPost(c.Request.Context(), viewerID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post", view)
}

// Update godoc
// @Summary      Update Post
// @Description  Update a post (owner only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Post ID"
// @Param        post  body      PostRequest  true  "Post JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [put]
// @Security     BearerAuth
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	post := &domain.Post{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		RequiredTime:   req.RequiredTime,
		Location:       req.Location,
		Type:           req.Type,
		Salary:         req.Salary,
	}

	if err := h.postUC.UpdatePost(c.Request.Context(), ownerID, post); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated", post)
}

// Delete godoc
// @Summary      Delete Post
// @Description  Delete a post and all its applications, interests and comments (owner only)
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	ownerID := c.GetString(string(domain.KeyUserID))
	if err := h.postUC.DeletePost(c.Request.Context(), ownerID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted", nil)
}

// ListOthers godoc
// @Summary      Post Feed
// @Description  List posts owned by other users, with the viewer's interaction flags
// @Tags         posts
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /posts [get]
// @Security     BearerAuth
func (h *PostHandler) ListOthers(c *gin.Context) {
	page, pageSize := pageParams(c)
	viewerID := c.GetString(string(domain.KeyUserID))

	posts, total, err := h.postUC.ListOtherPosts(c.Request.Context(), viewerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post feed", gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// ListMine godoc
// @Summary      My Posts
// @Description  List the authenticated user's own posts with applicant counts
// @Tags         posts
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /posts/mine [get]
// @Security     BearerAuth
func (h *PostHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	ownerID := c.GetString(string(domain.KeyUserID))

	posts, total, err := h.postUC.ListUserPosts(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My posts", gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// ListWorking godoc
// @Summary      Working Posts
// @Description  List posts where the authenticated user's application was approved
// @Tags         posts
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /posts/working [get]
// @Security     BearerAuth
func (h *PostHandler) ListWorking(c *gin.Context) {
	page, pageSize := pageParams(c)
	viewerID := c.GetString(string(domain.KeyUserID))

	posts, total, err := h.postUC.ListWorkingPosts(c.Request.Context(), viewerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Working posts", gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// ListInteracted godoc
// @Summary      Interacted Posts
// @Description  List posts the authenticated user applied to or marked interest in
// @Tags         posts
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /posts/interactions [get]
// @Security     BearerAuth
func (h *PostHandler) ListInteracted(c *gin.Context) {
	page, pageSize := pageParams(c)
	viewerID := c.GetString(string(domain.KeyUserID))

	posts, total, err := h.postUC.ListUserInteractions(c.Request.Context(), viewerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interacted posts", gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// AddComment godoc
// @Summary      Add Comment
// @Description  Comment on a post. HTML outside the UGC policy is stripped.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Post ID"
// @Param        comment  body      CommentRequest  true  "Comment JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/comments [post]
// @Security     BearerAuth
func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	authorID := c.GetString(string(domain.KeyUserID))
	comment, err := h.postUC.AddComment(c.Request.Context(), authorID, id, req.Body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment added", comment)
}

// ListComments godoc
// @Summary      List Comments
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/comments [get]
// @Security     BearerAuth
func (h *PostHandler) ListComments(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}

	comments, err := h.postUC.ListComments(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comments", comments)
}
