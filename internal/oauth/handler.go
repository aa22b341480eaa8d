package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github-event-bridge/pkg/response"
)

// exchangeTimeout bounds the server-to-server token exchange call.
const exchangeTimeout = 10 * time.Second

// Login redirects the browser to GitHub's authorize endpoint.
// TODO: send a state parameter and validate it in Callback to protect the
// exchange against CSRF.
// @Summary   GitHub Login
// @Description Redirects to GitHub's OAuth authorize endpoint
// @Tags      OAuth
// @Success   302
// @Router    /login/github [get]
func (h *Handler) Login(c *gin.Context) {
	authURL := h.oauth.AuthCodeURL("")
	h.l.Infof(c.Request.Context(), "Redirecting to GitHub authorize endpoint for client %s", h.oauth.ClientID)
	c.Redirect(http.StatusFound, authURL)
}

// Callback exchanges the authorization code for an access token. The code is
// single-use: it is consumed by exactly one exchange attempt, with no retry.
// The token is echoed back in the response body, mirroring the behavior this
// service replaces; an opaque session would be the hardened alternative.
// @Summary   OAuth Callback
// @Description Exchanges the authorization code for an access token
// @Tags      OAuth
// @Produce   json
// @Param     code query string true "authorization code"
// @Success   200 {object} response.Resp
// @Failure   400 {object} response.Resp
// @Failure   500 {object} response.Resp
// @Router    /oauth/callback [get]
func (h *Handler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.l.Warnf(c.Request.Context(), "OAuth callback without code parameter")
		response.Error(c, ErrMissingCode, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exchangeTimeout)
	defer cancel()

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
			h.l.Errorf(ctx, "Token exchange transport failure: %v", err)
			response.InternalError(c, ErrExchangeTransport)
			return
		}
		// The endpoint answered but refused the code (oauth2.RetrieveError
		// or an error body on a 200).
		h.l.Errorf(ctx, "Token exchange rejected: %v", err)
		response.InternalError(c, ErrExchangeRejected)
		return
	}

	scope, _ := token.Extra("scope").(string)
	response.OK(c, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Scope:       scope,
	})
}
