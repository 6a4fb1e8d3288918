package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/dto"
	"github.com/maooe/finance_control_app/internal/middleware"
	"github.com/maooe/finance_control_app/pkg/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles the sign-in transitions and session lifecycle.
type authHandler struct {
	identityService portssvc.IdentitySvcFacade
	tokenService    portssvc.TokenSvcFacade
	googleEnabled   bool
}

func newAuthHandler(cfg *config.Config, is portssvc.IdentitySvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		identityService: is,
		tokenService:    ts,
		googleEnabled:   cfg.GoogleConfigured(),
	}
}

// registerAuthRoutes sets up the public sign-in routes. All three entry
// points share one per-IP rate limiter.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.Identity, services.Token)

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth", limitMiddleware)
	{
		auth.POST("/google/exchange-code", h.exchangeGoogleCode)
		auth.POST("/offline", h.offlineSignIn)
		auth.POST("/guest", h.guestSignIn)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade) {
	h := &authHandler{identityService: identityService}

	auth := rg.Group("/auth")
	{
		auth.GET("/session", h.getSession)
		auth.POST("/signout", h.signOut)
	}
}

// exchangeGoogleCode godoc
// @Summary Complete the Google sign-in
// @Description Exchanges the OAuth authorization code for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !h.googleEnabled {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Google sign-in is not configured"})
		return
	}

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for code exchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	identity, err := h.identityService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Code exchange rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Sign-in failed"})
		} else {
			logger.Error("Code exchange failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete sign-in"})
		}
		return
	}

	h.respondSignedIn(c, identity)
}

// offlineSignIn godoc
// @Summary Sign in as the local offline user
// @Description Creates the offline pseudo-identity; only available when no provider is configured
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/offline [post]
func (h *authHandler) offlineSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, err := h.identityService.OfflineSignIn(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Offline mode is unavailable when a provider is configured"})
		} else {
			logger.Error("Offline sign-in failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		}
		return
	}

	h.respondSignedIn(c, identity)
}

// guestSignIn godoc
// @Summary Sign in as a guest
// @Description Creates the guest pseudo-identity; always available
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Router /auth/guest [post]
func (h *authHandler) guestSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, err := h.identityService.GuestSignIn(c.Request.Context())
	if err != nil {
		logger.Error("Guest sign-in failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	h.respondSignedIn(c, identity)
}

// respondSignedIn mints the session token for identity and writes the
// standard sign-in response.
func (h *authHandler) respondSignedIn(c *gin.Context, identity *domain.Identity) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), identity)
	if err != nil {
		logger.Error("Failed to mint access token", slog.String("error", err.Error()), slog.String("user_id", identity.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	logger.Info("User signed in", slog.String("user_id", identity.UserID), slog.String("mode", string(identity.Mode)))
	c.JSON(http.StatusOK, dto.ToAuthResponse(token, expiresAt, identity))
}

// getSession godoc
// @Summary Restore the current session
// @Description Returns the persisted identity for the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *authHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	identity, err := h.identityService.RestoreSession(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Debug("No persisted session for user", slog.String("user_id", userID))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Signed out"})
		} else {
			logger.Error("Failed to restore session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to restore session"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToIdentityResponse(identity))
}

// signOut godoc
// @Summary Sign out
// @Description Clears the persisted session for the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/signout [post]
func (h *authHandler) signOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.identityService.SignOut(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		} else {
			logger.Error("Failed to sign out", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign out"})
		}
		return
	}

	logger.Info("User signed out", slog.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
