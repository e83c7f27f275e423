package http

import (
	"net/http"

	"streamtube/internal/usecase"
	"streamtube/pkg/config"
	"streamtube/pkg/logger"
	"streamtube/pkg/middleware"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase      usecase.UserUseCase
	accessCookieAge  int
	refreshCookieAge int
	logger           *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, cfg *config.Config, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase:      userUseCase,
		accessCookieAge:  int(cfg.AccessTokenTTL.Seconds()),
		refreshCookieAge: int(cfg.RefreshTokenTTL.Seconds()),
		logger:           logger,
	}
}

type RegisterRequest struct {
	Fullname string `form:"fullname" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Username string `form:"username" binding:"required,min=3"`
	Password string `form:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with an avatar (required) and cover image (optional)
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullname formData string true "Full name"
// @Param        email formData string true "Email"
// @Param        username formData string true "Username"
// @Param        password formData string true "Password"
// @Param        avatar formData file true "Avatar image"
// @Param        coverImage formData file false "Cover image"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, response.Validation("invalid registration payload", err.Error()))
		return
	}

	input := usecase.RegisterInput{
		Fullname: req.Fullname,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}
	if avatar, err := c.FormFile("avatar"); err == nil {
		input.Avatar = avatar
	}
	if cover, err := c.FormFile("coverImage"); err == nil {
		input.CoverImage = cover
	}

	user, err := h.userUseCase.Register(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, user, "user registered successfully")
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username or email plus password; sets token cookies
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("invalid login payload", err.Error()))
		return
	}

	usernameOrEmail := req.Username
	if usernameOrEmail == "" {
		usernameOrEmail = req.Email
	}
	if usernameOrEmail == "" {
		response.Fail(c, response.Validation("username or email is required"))
		return
	}

	user, tokens, err := h.userUseCase.Login(c.Request.Context(), usernameOrEmail, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.OK(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	}, "user logged in successfully")
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the stored refresh token and clears token cookies
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userUseCase.Logout(c.Request.Context(), principalID(c)); err != nil {
		response.Fail(c, err)
		return
	}

	h.clearAuthCookies(c)
	response.OK(c, http.StatusOK, nil, "user logged out successfully")
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken godoc
// @Summary      Refresh the token pair
// @Description  Rotates access and refresh tokens; the presented refresh token must match the stored one
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest false "Refresh token (cookie used when omitted)"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" {
		token, _ = c.Cookie(refreshTokenCookie)
	}
	if token == "" {
		response.Fail(c, response.Unauthorized("refresh token is required"))
		return
	}

	tokens, err := h.userUseCase.RefreshTokens(c.Request.Context(), token)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setAuthCookies(c, tokens)
	response.OK(c, http.StatusOK, tokens, "access token refreshed")
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("invalid password payload", err.Error()))
		return
	}

	if err := h.userUseCase.ChangePassword(c.Request.Context(), principalID(c), req.OldPassword, req.NewPassword); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "password changed successfully")
}

// CurrentUser godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/current [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, err := h.userUseCase.GetCurrentUser(c.Request.Context(), principalID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, user, "current user fetched successfully")
}

type UpdateAccountRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// UpdateAccount godoc
// @Summary      Update account details
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateAccountRequest true "Account fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("invalid account payload", err.Error()))
		return
	}

	user, err := h.userUseCase.UpdateAccount(c.Request.Context(), principalID(c), req.Fullname, req.Email)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, user, "account details updated successfully")
}

// UpdateAvatar godoc
// @Summary      Update avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	avatar, _ := c.FormFile("avatar")

	user, err := h.userUseCase.UpdateAvatar(c.Request.Context(), principalID(c), avatar)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, user, "avatar updated successfully")
}

// UpdateCoverImage godoc
// @Summary      Update cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "Cover image"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	cover, _ := c.FormFile("coverImage")

	user, err := h.userUseCase.UpdateCoverImage(c.Request.Context(), principalID(c), cover)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, user, "cover image updated successfully")
}

// ChannelProfile godoc
// @Summary      Channel profile
// @Description  Aggregated channel view with subscriber counts and the caller's subscription state
// @Tags         users
// @Produce      json
// @Param        username path string true "Channel username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/c/{username} [get]
func (h *UserHandler) ChannelProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.Fail(c, response.Validation("username is required"))
		return
	}

	profile, err := h.userUseCase.GetChannelProfile(c.Request.Context(), username, principalID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, profile, "channel profile fetched successfully")
}

// WatchHistory godoc
// @Summary      Watch history
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /users/history [get]
func (h *UserHandler) WatchHistory(c *gin.Context) {
	page, limit := parsePagination(c)

	history, err := h.userUseCase.GetWatchHistory(c.Request.Context(), principalID(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, history, "watch history fetched successfully")
}

func (h *UserHandler) setAuthCookies(c *gin.Context, tokens *usecase.TokenPair) {
	c.SetCookie(middleware.AccessTokenCookie, tokens.AccessToken, h.accessCookieAge, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, tokens.RefreshToken, h.refreshCookieAge, "/", "", false, true)
}

func (h *UserHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
}
