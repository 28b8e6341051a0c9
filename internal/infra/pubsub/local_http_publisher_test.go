package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	event := &service.DomainEvent{
		RequestID: "req-1",
		Name:      service.EventUserRegistered,
		UserID:    "user-1",
		Payload:   map[string]any{"email": "a@x.com"},
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.EventUserRegistered, received.Message.Attributes["event"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "user-1", decoded.UserID)
	assert.Equal(t, "a@x.com", decoded.Payload["email"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.Publish(context.Background(), &service.DomainEvent{Name: service.EventFarmOnboarded})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())

	assert.NoError(t, publisher.Publish(context.Background(), &service.DomainEvent{Name: "x"}))
	assert.NoError(t, publisher.Close())
}
