package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/PremjitDas/Task-Management-App/internal/apperror"
	"github.com/PremjitDas/Task-Management-App/internal/auth"
	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
	"github.com/PremjitDas/Task-Management-App/internal/dto"

	"github.com/gin-gonic/gin"
)

// UserService is the slice of the identity service the auth handlers use.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (dom.User, error)
	Login(ctx context.Context, email, password string) (dom.User, string, error)
}

// AuthHandler handles register, login and logout.
type AuthHandler struct {
	userSvc   UserService
	cookieTTL time.Duration
}

// NewAuthHandler returns a new AuthHandler. cookieTTL should match the
// token lifetime so the cookie and the claim expire together.
func NewAuthHandler(userSvc UserService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, cookieTTL: cookieTTL}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(http.StatusBadRequest, "all fields are required"))
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(http.StatusCreated, dto.UserToResponse(user), "User registered successfully"))
}

// Login godoc
// @Summary      Login
// @Description  Issues a session token, set as an HTTP-only cookie and returned in the body.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(http.StatusBadRequest, "email and password are required"))
		return
	}
	user, signed, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.SessionCookieName, signed, int(h.cookieTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.LoginResponse{
		User:        dto.UserToResponse(user),
		AccessToken: signed,
	}, "User logged in successfully"))
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the session cookie. A bearer-held copy of the token stays valid until expiry.
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.OK(http.StatusOK, struct{}{}, "User logged out successfully"))
}

// respondError maps a service error to the uniform envelope. Unexpected
// causes are logged here and never quoted to the client.
func respondError(c *gin.Context, err error) {
	ae := apperror.From(err)
	if ae.Kind == apperror.Unexpected {
		log.Printf("handler: %v", ae)
	}
	code := ae.StatusCode()
	c.JSON(code, dto.Fail(code, ae.Message))
}
