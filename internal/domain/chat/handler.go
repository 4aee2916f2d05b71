package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vitalscan/vitalscan/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/chat/messages", h.Send)
	api.GET("/chat/messages", h.History)
	api.DELETE("/chat/messages", h.Clear)
}

type sendRequest struct {
	Content string `json:"content"`
}

type streamEvent struct {
	Delta   string   `json:"delta,omitempty"`
	Done    bool     `json:"done,omitempty"`
	Message *Message `json:"message,omitempty"`
}

// Send streams the assistant reply back as server-sent events: one
// event per delta, then a final done event carrying the committed
// message.
func (h *Handler) Send(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}

	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The response only switches to event-stream mode on the first
	// write, so validation failures still go out as plain JSON errors.
	resp := c.Response()
	streaming := false
	writeEvent := func(ev streamEvent) error {
		if !streaming {
			streaming = true
			resp.Header().Set(echo.HeaderContentType, "text/event-stream")
			resp.Header().Set("Cache-Control", "no-cache")
			resp.Header().Set("Connection", "keep-alive")
		}
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return err
		}
		resp.Flush()
		return nil
	}

	msg, err := h.svc.Send(c.Request().Context(), userID, req.Content, func(delta string) error {
		return writeEvent(streamEvent{Delta: delta})
	})
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrStreamActive):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	// Upstream failures still produce a committed fallback message, so
	// the stream ends with a done event either way.
	return writeEvent(streamEvent{Done: true, Message: &msg})
}

func (h *Handler) History(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": h.svc.History(userID),
	})
}

func (h *Handler) Clear(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	h.svc.Clear(userID)
	return c.NoContent(http.StatusNoContent)
}
