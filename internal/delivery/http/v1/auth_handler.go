package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC  domain.AuthUsecase
	tracker *security.LoginTracker
	config  *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tracker *security.LoginTracker, cfg *config.Config) {
	handler := &AuthHandler{
		authUC:  authUC,
		tracker: tracker,
		config:  cfg,
	}

	loginLimit := middleware.LoginRateLimitConfig()
	loginLimit.Limit = cfg.RateLimitLoginThreshold
	loginLimit.Window = time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	publicUsers := public.Group("/users")
	{
		publicUsers.POST("/register", middleware.RateLimitMiddleware(middleware.RegisterRateLimitConfig()), handler.Register)
		publicUsers.POST("/login", middleware.RateLimitMiddleware(loginLimit), handler.Login)
	}

	protectedUsers := protected.Group("/users")
	{
		protectedUsers.GET("/me", handler.Me)
		protectedUsers.POST("/logout", handler.Logout)
	}
}

type RegisterRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,strong_password"`
	FirstName string   `json:"first_name" binding:"required,valid_name"`
	LastName  string   `json:"last_name" binding:"omitempty,valid_name"`
	Country   string   `json:"country" binding:"max=100"`
	Bio       string   `json:"bio" binding:"max=2000"`
	Skills    []string `json:"skills" binding:"omitempty,skill_list"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
		Bio:       req.Bio,
		Skills:    req.Skills,
	}

	if err := h.authUC.Register(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ctx := c.Request.Context()
	ip := c.ClientIP()
	requestID := c.GetString("RequestID")

	blocked, err := h.tracker.IsBlocked(ctx, req.Email, ip)
	if err == nil && blocked {
		security.DefaultLogger().LogLoginBlocked(ctx, req.Email, ip, c.GetHeader("User-Agent"), requestID)
		c.Error(apperror.New(http.StatusTooManyRequests, "Too many failed login attempts. Please try again later.", nil))
		return
	}

	user, token, err := h.authUC.Login(ctx, req.Email, req.Password)
	if err != nil {
		// Best effort: tracking requires Redis
		_, _, _ = h.tracker.RecordFailedAttempt(ctx, req.Email, ip, c.GetHeader("User-Agent"), requestID)
		c.Error(err)
		return
	}

	_ = h.tracker.ClearAttempts(ctx, req.Email, ip)
	security.DefaultLogger().LogLoginSuccess(ctx, user.ID, ip, requestID)

	// Cookie for browser clients; API clients use the token from the body
	maxAge := h.config.TokenTTLHours * 3600
	c.SetCookie("auth_token", token, maxAge, "/", "", true, true)

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary      Current User
// @Description  Get the authenticated user's account
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the auth cookie
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}
