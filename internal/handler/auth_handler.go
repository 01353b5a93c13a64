package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/middleware"
	"github.com/skabdullah999/Dumurianews24/internal/service"
	"github.com/skabdullah999/Dumurianews24/internal/validator"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// AuthHandler serves login, logout, session probe, bootstrap signup and
// the session-event stream.
type AuthHandler struct {
	auth       service.AuthServiceInterface
	validator  *validator.Validator
	cookieTTL  int
	secureOnly bool
}

// NewAuthHandler creates a new AuthHandler. cookieTTL is the session
// cookie max-age in seconds.
func NewAuthHandler(auth service.AuthServiceInterface, v *validator.Validator, cookieTTL int) *AuthHandler {
	return &AuthHandler{auth: auth, validator: v, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	form := validator.LoginForm{Email: req.Email, Password: req.Password}
	if err := h.validator.ValidateLoginForm(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "সব ফিল্ড পূরণ করুন",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ইমেইল বা পাসওয়ার্ড ভুল"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "লগইন করতে সমস্যা হয়েছে"})
		return
	}

	c.SetCookie(middleware.SessionTokenCookie, session.Token, h.cookieTTL, "/", "", h.secureOnly, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout handles POST /api/v1/auth/logout
//
// The local view is unconditionally logged out, whatever storage says.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context(), middleware.SessionToken(c))
	c.SetCookie(middleware.SessionTokenCookie, "", -1, "/", "", h.secureOnly, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// Session handles GET /api/v1/auth/session - a read-only probe.
func (h *AuthHandler) Session(c *gin.Context) {
	authenticated := h.auth.CheckSession(c.Request.Context(), middleware.SessionToken(c))
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}

// Signup handles POST /api/v1/auth/signup - the one-time bootstrap of the
// first administrative account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	form := validator.SignupForm{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if err := h.validator.ValidateSignupForm(&form); err != nil {
		fields := validator.FieldErrors(err)
		msg := "সব ফিল্ড পূরণ করুন"
		if fields["confirm_password"] != "" {
			msg = "পাসওয়ার্ড মিলছে না"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "fields": fields})
		return
	}

	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "অ্যাডমিন ইউজার ইতিমধ্যে আছে। লগইন পেজে যান।"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "সাইন আপ করতে সমস্যা হয়েছে"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "সাইন আপ সফল হয়েছে!"})
}

// sessionEvent is one session-state transition pushed to observers.
type sessionEvent struct {
	Authenticated bool `json:"authenticated"`
}

// Events handles GET /api/v1/auth/events - a WebSocket stream of
// session-state transitions so navigation UI can react without polling.
func (h *AuthHandler) Events(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	transitions, cancel := h.auth.Subscribe()
	defer cancel()

	// Drain client frames so closes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case state, ok := <-transitions:
			if !ok {
				return
			}
			if err := conn.WriteJSON(sessionEvent{Authenticated: state}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
