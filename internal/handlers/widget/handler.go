package widget

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/onja-org/w2-scss-lab/internal/data"
	"github.com/onja-org/w2-scss-lab/internal/models"
	"github.com/onja-org/w2-scss-lab/internal/repository/session"
	serviceWidget "github.com/onja-org/w2-scss-lab/internal/widget"
)

const timeoutDuration = 5 * time.Second

type sessionStore interface {
	Save(ctx context.Context, id string, state models.WidgetState) error
	Load(ctx context.Context, id string) (models.WidgetState, error)
	Delete(ctx context.Context, id string) error
}

type dismissalRecorder interface {
	ObserveDismissal()
}

type InputRequest struct {
	Text string `json:"text"`
}

type SelectRequest struct {
	City string `json:"city" binding:"required"`
}

type ClickRequest struct {
	Target string `json:"target"`
}

type SessionResponse struct {
	ID    string             `json:"id"`
	State models.WidgetState `json:"state"`
}

type Handler struct {
	table   *data.Table
	store   sessionStore
	metrics dismissalRecorder
	logger  zerolog.Logger
}

func NewHandler(table *data.Table, store sessionStore, metrics dismissalRecorder, logger zerolog.Logger) *Handler {
	return &Handler{table: table, store: store, metrics: metrics, logger: logger}
}

// Create
// @Summary Start a widget session
// @Tags widget
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500
// @Router /widget/sessions [post]
func (h *Handler) Create(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	id := uuid.New().String()
	state := serviceWidget.NewController(h.table, models.WidgetState{}).State()

	if err := h.store.Save(ctx, id, state); err != nil {
		h.logger.Error().Err(err).Str("session", id).Msg("failed to create widget session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{ID: id, State: state})
}

// Get
// @Summary Read a widget session
// @Tags widget
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionResponse
// @Failure 404
// @Router /widget/sessions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	h.apply(c, func(*serviceWidget.Controller) error { return nil })
}

// Input
// @Summary Type into the city input
// @Tags widget
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body InputRequest true "Input text"
// @Success 200 {object} SessionResponse
// @Failure 400
// @Failure 404
// @Router /widget/sessions/{id}/input [post]
func (h *Handler) Input(c *gin.Context) {
	var req InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.apply(c, func(ctrl *serviceWidget.Controller) error {
		ctrl.Type(req.Text)
		return nil
	})
}

// Select
// @Summary Pick a suggestion
// @Tags widget
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body SelectRequest true "Suggested city"
// @Success 200 {object} SessionResponse
// @Failure 400
// @Failure 404
// @Failure 409
// @Router /widget/sessions/{id}/select [post]
func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	h.apply(c, func(ctrl *serviceWidget.Controller) error {
		return ctrl.Select(req.City)
	})
}

// Submit
// @Summary Look up the typed city
// @Tags widget
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionResponse
// @Failure 404
// @Router /widget/sessions/{id}/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	h.apply(c, func(ctrl *serviceWidget.Controller) error {
		ctrl.Submit()
		return nil
	})
}

// Click
// @Summary Report a click on the page
// @Description Hides the suggestion list when target is outside the search control.
// @Tags widget
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body ClickRequest true "Clicked element id"
// @Success 200 {object} SessionResponse
// @Failure 400
// @Failure 404
// @Router /widget/sessions/{id}/click [post]
func (h *Handler) Click(c *gin.Context) {
	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.apply(c, func(ctrl *serviceWidget.Controller) error {
		if ctrl.Click(req.Target) {
			h.metrics.ObserveDismissal()
		}
		return nil
	})
}

// Delete
// @Summary End a widget session
// @Tags widget
// @Param id path string true "Session id"
// @Success 204
// @Failure 404
// @Router /widget/sessions/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	id := c.Param("id")
	if err := h.store.Delete(ctx, id); err != nil {
		h.storeError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// apply loads the session, runs fn on it and saves the result.
// Load and Save are not atomic: a session is driven by a single page, one
// request at a time, and two concurrent requests on the same id leave the
// state of whichever saves last.
func (h *Handler) apply(c *gin.Context, fn func(*serviceWidget.Controller) error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	id := c.Param("id")
	state, err := h.store.Load(ctx, id)
	if err != nil {
		h.storeError(c, id, err)
		return
	}

	ctrl := serviceWidget.NewController(h.table, state)
	if err := fn(ctrl); err != nil {
		if errors.Is(err, serviceWidget.ErrNotSuggested) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	state = ctrl.State()
	if err := h.store.Save(ctx, id, state); err != nil {
		h.storeError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{ID: id, State: state})
}

func (h *Handler) storeError(c *gin.Context, id string, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	h.logger.Error().Err(err).Str("session", id).Msg("session store failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
