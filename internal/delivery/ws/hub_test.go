package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"chatline/config"
	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T, sendBuffer int) *Hub {
	t.Helper()

	cfg := &config.Config{}
	cfg.Relay.SendBuffer = sendBuffer
	cfg.Relay.MaxMessageBytes = 16 << 10

	hub := newHub(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()
	t.Cleanup(func() {
		require.NoError(t, hub.Shutdown(time.Second))
	})

	return hub
}

func newTestClient(hub *Hub, username string) *Client {
	return newClient(hub, nil, &entity.Identity{
		AccountID: uuid.New(),
		Username:  username,
	})
}

func waitClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()

	require.Eventually(t, func() bool {
		return hub.clientCount() == want
	}, time.Second, 5*time.Millisecond)
}

func recvFrame(t *testing.T, client *Client) []byte {
	t.Helper()

	select {
	case payload := <-client.send:
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")

		return nil
	}
}

func TestHub_BroadcastReachesEveryClientIncludingSender(t *testing.T) {
	hub := newTestHub(t, 8)

	sender := newTestClient(hub, "ada")
	peer := newTestClient(hub, "grace")
	hub.Register(sender)
	hub.Register(peer)
	waitClientCount(t, hub, 2)

	hub.Broadcast([]byte(`{"sender":"ada","text":"hi"}`))

	assert.JSONEq(t, `{"sender":"ada","text":"hi"}`, string(recvFrame(t, sender)))
	assert.JSONEq(t, `{"sender":"ada","text":"hi"}`, string(recvFrame(t, peer)))
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := newTestHub(t, 8)

	client := newTestClient(hub, "ada")
	hub.Register(client)
	waitClientCount(t, hub, 1)

	hub.Unregister(client)
	waitClientCount(t, hub, 0)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_DropsClientWithFullSendBuffer(t *testing.T) {
	hub := newTestHub(t, 1)

	stalled := newTestClient(hub, "slow")
	healthy := newTestClient(hub, "fast")
	hub.Register(stalled)
	hub.Register(healthy)
	waitClientCount(t, hub, 2)

	// Nothing drains stalled.send, so the second broadcast overflows it.
	hub.Broadcast([]byte(`{"text":"one"}`))
	recvFrame(t, healthy)
	hub.Broadcast([]byte(`{"text":"two"}`))
	recvFrame(t, healthy)

	waitClientCount(t, hub, 1)
	assert.Equal(t, 1, hub.clientCount())
}

func TestClient_SendErrorAfterHubDropDoesNotPanic(t *testing.T) {
	hub := newTestHub(t, 1)

	stalled := newTestClient(hub, "slow")
	hub.Register(stalled)
	waitClientCount(t, hub, 1)

	// Overflow the send buffer so the hub drops the client and closes its
	// send channel while its read loop could still be producing errors.
	hub.Broadcast([]byte(`{"text":"one"}`))
	hub.Broadcast([]byte(`{"text":"two"}`))
	waitClientCount(t, hub, 0)

	// Must be a no-op, not a send on the closed channel.
	stalled.sendError(domainerrors.ErrEmptyMessage)
}

func TestClient_ProcessInbound_StampsSenderAndTimestamp(t *testing.T) {
	hub := newTestHub(t, 8)

	sender := newTestClient(hub, "ada")
	peer := newTestClient(hub, "grace")
	hub.Register(sender)
	hub.Register(peer)
	waitClientCount(t, hub, 2)

	before := time.Now().UTC()
	sender.processInbound([]byte(`{"text":"hello","media_url":"/uploads/image/cat.jpg","media_category":"image"}`))

	var msg entity.Message
	require.NoError(t, json.Unmarshal(recvFrame(t, peer), &msg))
	assert.Equal(t, "ada", msg.Sender)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, "/uploads/image/cat.jpg", msg.MediaURL)
	assert.Equal(t, entity.CategoryImage, msg.MediaCategory)
	assert.False(t, msg.Timestamp.Before(before))

	// The sender receives its own stamped message too.
	require.NoError(t, json.Unmarshal(recvFrame(t, sender), &msg))
	assert.Equal(t, "ada", msg.Sender)
}

func TestClient_ProcessInbound_EmptyEnvelopeOnlyAnswersSender(t *testing.T) {
	hub := newTestHub(t, 8)

	sender := newTestClient(hub, "ada")
	peer := newTestClient(hub, "grace")
	hub.Register(sender)
	hub.Register(peer)
	waitClientCount(t, hub, 2)

	sender.processInbound([]byte(`{}`))

	var frame relayError
	require.NoError(t, json.Unmarshal(recvFrame(t, sender), &frame))
	assert.Equal(t, "EMPTY_MESSAGE", frame.Error.Code)

	select {
	case payload := <-peer.send:
		t.Fatalf("peer should not receive anything, got %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClient_ProcessInbound_MalformedFrame(t *testing.T) {
	hub := newTestHub(t, 8)

	sender := newTestClient(hub, "ada")
	hub.Register(sender)
	waitClientCount(t, hub, 1)

	sender.processInbound([]byte(`{not json`))

	var frame relayError
	require.NoError(t, json.Unmarshal(recvFrame(t, sender), &frame))
	assert.Equal(t, "VALIDATION_FAILED", frame.Error.Code)
}
