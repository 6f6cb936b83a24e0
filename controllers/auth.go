package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

// CreateAnonymousSession mints a guest user and returns its permanent
// token. The client keeps it until conversion or social sign-in.
func CreateAnonymousSession(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, token, err := svc.CreateAnonymous(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user":         user,
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

type convertRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ConvertAccount upgrades the calling anonymous user to an email account.
func ConvertAccount(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req convertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		result, err := svc.ConvertToRegistered(c.Request.Context(), currentUserID(c), req.Email, req.Password)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		result, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func RefreshTokens(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		result, err := svc.Refresh(c.Request.Context(), req.RefreshToken)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func CurrentUser(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.CurrentUser(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GoogleLogin redirects the browser into the Google consent flow. An
// authenticated anonymous caller is remembered so the callback converts
// that user in place.
func GoogleLogin(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		url := svc.BeginGoogleLogin(c.Query("redirect_uri"), currentUserID(c))
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

func GoogleCallback(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		code := c.Query("code")
		if state == "" || code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing state or code"})
			return
		}

		result, redirectURI, err := svc.CompleteGoogleLogin(c.Request.Context(), state, code)
		if err != nil {
			respondError(c, log, err)
			return
		}

		if redirectURI != "" {
			c.Redirect(http.StatusTemporaryRedirect,
				redirectURI+"?access_token="+result.Tokens.AccessToken+
					"&refresh_token="+result.Tokens.RefreshToken)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type oneTapRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleOneTap signs in with the ID token the One Tap widget hands the
// frontend, no redirect round trip involved.
func GoogleOneTap(svc *services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req oneTapRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		result, err := svc.GoogleOneTap(c.Request.Context(), req.Credential, currentUserID(c))
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
