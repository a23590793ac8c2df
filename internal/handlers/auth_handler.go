package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas/internal/backend"
	apperrors "financas/internal/errors"
	"financas/internal/middleware"
	"financas/internal/session"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	auth     backend.Authenticator
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth backend.Authenticator, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// LoginRequest represents the login request payload. RegisterIfMissing is
// the client's answer to the auto-register offer: absent means the offer
// has not been made yet, true accepts it, false declines it.
type LoginRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	RegisterIfMissing *bool  `json:"register_if_missing"`
}

// RegisterRequest represents the sign-up request payload
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SessionResponse represents the session data in the response
type SessionResponse struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string          `json:"token"`
	User  SessionResponse `json:"user"`
	Next  string          `json:"next"`
}

// RegisterOffer is attached to a user-not-found login failure when the
// client has not answered the auto-register question yet.
type RegisterOffer struct {
	Title    string `json:"title"`
	Question string `json:"question"`
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate with email and password. When the email is unknown, the response carries an auto-register offer; retry with register_if_missing set to answer it.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "Authenticated"
// @Success     204 "Auto-register offer declined"
// @Failure     400 {object} ErrorResponse "Missing fields"
// @Failure     401 {object} ErrorResponse "Wrong password"
// @Failure     404 {object} ErrorResponse "Unknown email, offer attached"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var prompt session.RegisterPrompt
	if req.RegisterIfMissing != nil {
		answer := *req.RegisterIfMissing
		prompt = func(string) bool { return answer }
	}

	ctrl := session.NewController(h.auth, h.sessions)
	sess, route, err := ctrl.Login(req.Email, req.Password, prompt)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == backend.CodeUserNotFound && req.RegisterIfMissing == nil {
			c.JSON(appErr.StatusCode, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
				"register_offer": RegisterOffer{
					Title:    "Usuário não encontrado",
					Question: "Deseja cadastrar um novo usuário com este e-mail e senha?",
				},
			})
			return
		}
		respondWithError(c, err)
		return
	}

	if sess == nil {
		// Declined the auto-register offer: nothing to surface.
		c.Status(http.StatusNoContent)
		return
	}

	token, err := middleware.GenerateToken(sess.UserID, sess.Email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  sessionResponse(sess),
		"next":  route,
	})
}

// Register handles user sign-up
// @Summary     Register a new user
// @Description Create an account with name, email, and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "Registered and authenticated"
// @Failure     400 {object} ErrorResponse "Missing fields or password mismatch"
// @Failure     409 {object} ErrorResponse "Email already in use"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ctrl := session.NewController(h.auth, h.sessions)
	sess, route, err := ctrl.Register(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(sess.UserID, sess.Email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  sessionResponse(sess),
		"next":  route,
	})
}

// Logout handles sign-out
// @Summary     Sign out
// @Description Tear down the current session. Sign-out failures are logged and never surfaced.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Navigation hint"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctrl := session.NewController(h.auth, h.sessions)
	route := ctrl.Logout()

	// A failed sign-out keeps the session and routes nowhere; either way
	// the response is a success.
	c.JSON(http.StatusOK, gin.H{"next": route})
}

// GetProfile returns the current session
// @Summary     Get user profile
// @Description Get the signed-in user's session information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SessionResponse "Current session"
// @Failure     401 {object} ErrorResponse "No live session"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sess := h.sessions.Current()
	if sess == nil || sess.UserID != userID {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sessionResponse(sess)})
}

func sessionResponse(sess *session.Session) SessionResponse {
	return SessionResponse{
		UserID:        sess.UserID,
		Email:         sess.Email,
		DisplayName:   sess.DisplayName,
		EmailVerified: sess.EmailVerified,
	}
}
