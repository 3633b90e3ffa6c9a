package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "places/internal/delivery/context"
	"places/internal/domain/repository"
	"places/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler applies pushed place events to the local mirror replica
type PushHandler struct {
	logger    *slog.Logger
	placeRepo repository.PlaceRepository
	mirror    service.PlaceMirror
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Logger    *slog.Logger
	PlaceRepo repository.PlaceRepository
	Mirror    service.PlaceMirror
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger:    params.Logger,
		placeRepo: params.PlaceRepo,
		mirror:    params.Mirror,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PlaceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse place event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing place event",
		slog.String("type", string(event.Type)),
		slog.String("place_id", event.PlaceID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.applyEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to apply place event",
			slog.String("place_id", event.PlaceID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to redeliver; 200 drops messages that can never succeed
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PlaceEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// applyEvent reconciles one mirror row with the store. Created and updated
// events re-read the place so out-of-order deliveries converge on the latest row.
func (h *PushHandler) applyEvent(ctx context.Context, event *service.PlaceEvent) error {
	if strings.TrimSpace(event.PlaceID) == "" {
		return errors.New("place event without place_id")
	}

	switch event.Type {
	case service.PlaceCreated, service.PlaceUpdated:
		place, err := h.placeRepo.FindPlaceByID(ctx, event.PlaceID)
		if errors.Is(err, repository.ErrPlaceNotFound) {
			// Deleted after the event was published
			return h.deleteRow(ctx, event.PlaceID)
		}
		if err != nil {
			return newRetryableError(errors.Wrap(err, "find place"))
		}
		if err := h.mirror.UpdateRow(ctx, place); err != nil {
			return newRetryableError(errors.Wrap(err, "upsert mirror row"))
		}

		return nil
	case service.PlaceDeleted:
		return h.deleteRow(ctx, event.PlaceID)
	default:
		return errors.Errorf("unknown place event type %q", event.Type)
	}
}

func (h *PushHandler) deleteRow(ctx context.Context, id string) error {
	if err := h.mirror.DeleteRow(ctx, id); err != nil {
		return newRetryableError(errors.Wrap(err, "delete mirror row"))
	}

	return nil
}
