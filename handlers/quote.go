package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"festquote/models"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/quote"
	"festquote/services/session"
	"festquote/services/steps"
	"festquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes wizard sessions over HTTP. Every state response carries the
// session and the view of its current step.
type QuoteHandler struct {
	Sessions session.QuoteSessionService
	AnonKey  string
	Now      func() time.Time
}

func NewQuoteHandler(svc session.QuoteSessionService, anonKey string) *QuoteHandler {
	return &QuoteHandler{Sessions: svc, AnonKey: anonKey, Now: time.Now}
}

type sessionResponse struct {
	Session *models.QuoteSession `json:"session"`
	View    steps.View           `json:"view"`
	Notice  *models.Notice       `json:"notice,omitempty"`
}

type draftFieldRequest struct {
	Field string      `json:"field" binding:"required"`
	Value interface{} `json:"value"`
}

type contactFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// OpenSession creates a session and loads the reference collections into it.
func (h *QuoteHandler) OpenSession(c *gin.Context) {
	sess, err := h.Sessions.Open(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	loaded, notice, err := h.Sessions.LoadReference(c.Request.Context(), sess.ID, h.authFrom(c))
	if err != nil {
		if cerr := h.Sessions.Close(context.WithoutCancel(c.Request.Context()), sess.ID); cerr != nil {
			getLogger(c).Warn("Failed to discard quote session", zap.String("sessionId", sess.ID), zap.Error(cerr))
		}
		h.fail(c, err)
		return
	}
	getLogger(c).Info("Quote session started", zap.String("sessionId", sess.ID), zap.Bool("partialReference", notice != nil))
	c.JSON(http.StatusCreated, h.respond(loaded, notice))
}

// ReloadReference retries the reference fetch for an open session.
func (h *QuoteHandler) ReloadReference(c *gin.Context) {
	sess, notice, err := h.Sessions.LoadReference(c.Request.Context(), c.Param("id"), h.authFrom(c))
	h.reply(c, sess, notice, err)
}

func (h *QuoteHandler) GetSession(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) CloseSession(c *gin.Context) {
	if err := h.Sessions.Close(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}

func (h *QuoteHandler) UpdateDraft(c *gin.Context) {
	var req draftFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	sess, err := h.Sessions.UpdateField(c.Request.Context(), c.Param("id"), quote.Field(req.Field), req.Value)
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) UpdateContact(c *gin.Context) {
	var req contactFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	sess, err := h.Sessions.UpdateContact(c.Request.Context(), c.Param("id"), quote.ContactField(req.Field), req.Value)
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) ToggleEquipment(c *gin.Context) {
	sess, err := h.Sessions.ToggleEquipment(c.Request.Context(), c.Param("id"), c.Param("itemID"))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) ToggleService(c *gin.Context) {
	sess, err := h.Sessions.ToggleService(c.Request.Context(), c.Param("id"), c.Param("itemID"))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) Advance(c *gin.Context) {
	sess, err := h.Sessions.Advance(c.Request.Context(), c.Param("id"))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) Retreat(c *gin.Context) {
	sess, err := h.Sessions.Retreat(c.Request.Context(), c.Param("id"))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) GoTo(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid step", err.Error())
		return
	}
	sess, err := h.Sessions.GoTo(c.Request.Context(), c.Param("id"), models.Step(n))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) Reset(c *gin.Context) {
	sess, err := h.Sessions.Reset(c.Request.Context(), c.Param("id"))
	h.reply(c, sess, nil, err)
}

func (h *QuoteHandler) Summary(c *gin.Context) {
	text, err := h.Sessions.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": text})
}

// Submit returns the deep link for the client to open. The session is closed on success.
func (h *QuoteHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	receipt, err := h.Sessions.Submit(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	getLogger(c).Info("Quote request link issued", zap.String("sessionId", id))
	c.JSON(http.StatusOK, gin.H{
		"link":    receipt.Link,
		"message": receipt.Message,
		"notice":  receipt.Notice,
	})
}

func (h *QuoteHandler) ListSteps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": models.Steps()})
}

func (h *QuoteHandler) reply(c *gin.Context, sess *models.QuoteSession, notice *models.Notice, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.respond(sess, notice))
}

func (h *QuoteHandler) respond(sess *models.QuoteSession, notice *models.Notice) sessionResponse {
	return sessionResponse{
		Session: sess,
		View:    steps.Render(sess.Step, sess.Draft, sess.Reference, h.Now()),
		Notice:  notice,
	}
}

func (h *QuoteHandler) fail(c *gin.Context, err error) {
	var fieldErr *quote.FieldError
	var dispatchErr *dispatch.Error
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Quote session not found", err.Error())
	case errors.As(err, &fieldErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid draft field", err.Error())
	case errors.Is(err, session.ErrSubmitInFlight):
		utils.JSONError(c, http.StatusConflict, "Submission in progress", err.Error())
	case errors.Is(err, session.ErrSubmitNotAllowed):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Submission not allowed", err.Error())
	case errors.As(err, &dispatchErr):
		getLogger(c).Warn("Quote dispatch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"message": "Dispatch failed", "notice": dispatchErr.Notice})
	default:
		getLogger(c).Error("Quote session operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// authFrom builds the per-session credentials; a client bearer token is forwarded as is.
func (h *QuoteHandler) authFrom(c *gin.Context) catalog.AuthSession {
	auth := catalog.AuthSession{AnonKey: h.AnonKey}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		auth.AccessToken = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return auth
}
