package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/provider"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/token"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/authstate"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/logger"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/transport"
)

const failurePath = "/auth/failure"

type Handler struct {
	providers    *provider.Registry
	states       authstate.Store
	codec        *token.Codec
	transport    transport.Strategy
	cookieSecure bool
}

func NewHandler(
	registry *provider.Registry,
	states authstate.Store,
	codec *token.Codec,
	strategy transport.Strategy,
	cookieSecure bool,
) *Handler {
	return &Handler{
		providers:    registry,
		states:       states,
		codec:        codec,
		transport:    strategy,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/auth/failure", h.Failure)
	r.GET("/auth/verify", h.Verify)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/:provider", h.login)
	r.GET("/auth/:provider/callback", h.callback)
}

// login starts the delegated login: it creates the transient
// correlation session, drops the matching short-lived cookie and
// redirects the browser to the provider's authorization endpoint.
func (h *Handler) login(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	state, err := authstate.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to start login",
		})
		return
	}

	verifier, challenge := generatePKCE()

	now := time.Now()
	sess := authstate.Session{
		State:        state,
		PKCEVerifier: verifier,
		CreatedAt:    now,
		ExpiresAt:    now.Add(authstate.TTL),
	}

	if err := h.states.Create(c.Request.Context(), sess); err != nil {
		logger.Error("failed to persist login state", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to start login",
		})
		return
	}

	setStateCookie(c.Writer, state, h.cookieSecure)

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, challenge))
}

// callback resolves the login attempt. Provider denial, a missing or
// expired correlation session, and a failed code exchange all fold into
// the same failure path; none are retried.
func (h *Handler) callback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	clearStateCookie(c.Writer, h.cookieSecure)

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": providerName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, failurePath)
		return
	}

	state := c.Query("state")
	if state == "" || !matchesStateCookie(c.Request, state) {
		logger.Warn("oauth callback state mismatch", map[string]any{
			"provider": providerName,
		})
		c.Redirect(http.StatusFound, failurePath)
		return
	}

	sess, err := h.states.Consume(c.Request.Context(), state)
	if err != nil {
		logger.Error("failed to consume login state", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, failurePath)
		return
	}
	if sess == nil {
		// unknown, expired or already redeemed; the login must restart
		c.Redirect(http.StatusFound, failurePath)
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", nil)
		c.Redirect(http.StatusFound, failurePath)
		return
	}

	identity, err := p.ExchangeCode(
		c.Request.Context(),
		code,
		sess.PKCEVerifier,
	)
	if err != nil {
		logger.Warn("oauth code exchange failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, failurePath)
		return
	}

	signed, err := h.codec.Issue(*identity)
	if err != nil {
		logger.Error("failed to issue credential", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to issue credential",
		})
		return
	}

	redirectURL := h.transport.Deliver(c.Writer, signed)

	logger.Info("login succeeded", map[string]any{
		"provider": providerName,
		"subject":  identity.SubjectID,
	})

	c.Redirect(http.StatusFound, redirectURL)
}

// Failure is the terminal response for a denied or broken login.
func (h *Handler) Failure(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Authentication failed",
	})
}

// Verify re-validates a previously issued credential and echoes back
// the embedded claims. Signature and expiry failures are deliberately
// reported with the same message.
func (h *Handler) Verify(c *gin.Context) {
	tok, ok := h.transport.Extract(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid":   false,
			"message": "Token missing",
		})
		return
	}

	identity, err := h.codec.Verify(tok)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid":   false,
			"message": "Invalid or expired token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  identity,
	})
}

// Logout clears the client-held credential. Because credentials are
// self-contained, an already-issued token stays valid until its natural
// expiry; clearing is a client-side hint, and the response is the same
// whether or not the caller was authenticated.
func (h *Handler) Logout(c *gin.Context) {
	h.transport.Clear(c.Writer)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
