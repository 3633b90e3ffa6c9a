package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "places/internal/delivery/context"
	"places/internal/domain/entity"
	"places/internal/domain/repository"
	"places/internal/domain/service"
	mockRepo "places/internal/mocks/repository"
	mockService "places/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockPlaceRepository, *mockService.MockPlaceMirror) {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	mirror := mockService.NewMockPlaceMirror(t)

	return NewPushHandler(PushHandlerParams{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		PlaceRepo: placeRepo,
		Mirror:    mirror,
	}), placeRepo, mirror
}

func pushBody(t *testing.T, event *service.PlaceEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/places-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_UpsertsCreatedPlace(t *testing.T) {
	h, placeRepo, mirror := newTestPushHandler(t)
	place := &entity.Place{ID: "cafe-1", Name: "Blue Tokai"}

	placeRepo.EXPECT().FindPlaceByID(mock.Anything, "cafe-1").Return(place, nil)
	mirror.EXPECT().UpdateRow(mock.Anything, place).Return(nil)

	rec := servePush(h, pushBody(t, &service.PlaceEvent{Type: service.PlaceCreated, PlaceID: "cafe-1"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_DeletedPlace(t *testing.T) {
	h, _, mirror := newTestPushHandler(t)

	mirror.EXPECT().DeleteRow(mock.Anything, "cafe-1").Return(nil)

	rec := servePush(h, pushBody(t, &service.PlaceEvent{Type: service.PlaceDeleted, PlaceID: "cafe-1"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UpdatedPlaceGoneFromStore(t *testing.T) {
	h, placeRepo, mirror := newTestPushHandler(t)

	placeRepo.EXPECT().FindPlaceByID(mock.Anything, "cafe-1").Return(nil, repository.ErrPlaceNotFound)
	mirror.EXPECT().DeleteRow(mock.Anything, "cafe-1").Return(nil)

	rec := servePush(h, pushBody(t, &service.PlaceEvent{Type: service.PlaceUpdated, PlaceID: "cafe-1"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryableFailures(t *testing.T) {
	t.Run("store unavailable", func(t *testing.T) {
		h, placeRepo, _ := newTestPushHandler(t)
		placeRepo.EXPECT().FindPlaceByID(mock.Anything, "cafe-1").Return(nil, errors.New("connection refused"))

		rec := servePush(h, pushBody(t, &service.PlaceEvent{Type: service.PlaceUpdated, PlaceID: "cafe-1"}, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("mirror write failure", func(t *testing.T) {
		h, _, mirror := newTestPushHandler(t)
		mirror.EXPECT().DeleteRow(mock.Anything, "cafe-1").Return(errors.New("workbook locked"))

		rec := servePush(h, pushBody(t, &service.PlaceEvent{Type: service.PlaceDeleted, PlaceID: "cafe-1"}, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandlePush_PoisonMessagesAreAcked(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	rec := servePush(h, pushBody(t, &service.PlaceEvent{Type: "place.renamed", PlaceID: "cafe-1"}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = servePush(h, pushBody(t, &service.PlaceEvent{Type: service.PlaceDeleted}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedEnvelope(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`).Code)
}

func TestExtractRequestID_Priority(t *testing.T) {
	h, _, _ := newTestPushHandler(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event := &service.PlaceEvent{RequestID: "from-event"}

	assert.Equal(t, "from-attributes", h.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, event))

	event.RequestID = ""
	assert.Equal(t, "from-header", h.extractRequestID(ctx, &msg, event))

	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, event))
}
