package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Client is one authenticated WebSocket connection. Inbound frames are
// validated, stamped with the sender and a server timestamp, and handed to
// the hub; outbound frames arrive on the buffered send channel.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	identity *entity.Identity
	logger   *slog.Logger
	closed   bool
}

func newClient(hub *Hub, conn *websocket.Conn, identity *entity.Identity) *Client {
	if conn != nil {
		conn.SetReadLimit(hub.cfg.Relay.MaxMessageBytes)
	}

	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, hub.cfg.Relay.SendBuffer),
		identity: identity,
		logger:   hub.logger.With(slog.String("username", identity.Username)),
	}
}

func (c *Client) username() string {
	return c.identity.Username
}

// start launches the read and write pumps, tracked by the hub wait group so
// shutdown can wait for them.
func (c *Client) start() {
	c.hub.wg.Add(2)
	go func() {
		defer c.hub.wg.Done()
		c.writePump()
	}()
	go func() {
		defer c.hub.wg.Done()
		c.readPump()
	}()
}

// relayError is the error frame delivered back to the offending sender only.
type relayError struct {
	Error relayErrorBody `json:"error"`
}

type relayErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// sendError queues an error frame for this client alone. Peers never see
// another client's rejected input. The membership check under the hub lock
// keeps the send off a channel the hub has already closed.
func (c *Client) sendError(appErr domainerrors.AppError) {
	payload, err := json.Marshal(relayError{Error: relayErrorBody{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
	}})
	if err != nil {
		return
	}

	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()

	if _, ok := c.hub.clients[c]; !ok || c.closed {
		return
	}

	select {
	case c.send <- payload:
	default:
		c.logger.Warn("dropping error frame, send buffer full")
	}
}

// processInbound validates one raw frame and broadcasts the stamped message.
func (c *Client) processInbound(raw []byte) {
	var envelope entity.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.sendError(domainerrors.ErrValidationFailed)

		return
	}

	if envelope.Empty() {
		c.sendError(domainerrors.ErrEmptyMessage)

		return
	}

	stamped, err := json.Marshal(entity.Message{
		Sender:        c.identity.Username,
		Text:          envelope.Text,
		MediaURL:      envelope.MediaURL,
		MediaCategory: envelope.MediaCategory,
		Timestamp:     time.Now().UTC(),
	})
	if err != nil {
		c.logger.Error("marshaling relay message", slog.Any("error", err))

		return
	}

	c.hub.Broadcast(stamped)
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		if err := c.conn.Close(); err != nil && !isExpectedCloseError(err) {
			c.logger.Warn("closing connection after read loop", slog.Any("error", err))
		}
	}()

	c.resetReadDeadline()
	c.conn.SetPongHandler(func(string) error {
		c.resetReadDeadline()

		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			c.logReadError(err)

			return
		}

		c.processInbound(raw)
	}
}

func (c *Client) resetReadDeadline() {
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("setting read deadline", slog.Any("error", err))
	}
}

func (c *Client) logReadError(err error) {
	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		c.logger.Warn("inbound frame exceeded size limit",
			slog.Int64("limit", c.hub.cfg.Relay.MaxMessageBytes))
	case websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure):
		c.logger.Debug("client disconnected", slog.Any("error", err))
	case errors.Is(err, io.EOF), isExpectedCloseError(err):
		c.logger.Debug("connection closed", slog.Any("error", err))
	default:
		c.logger.Warn("websocket read failed", slog.Any("error", err))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil && !isExpectedCloseError(err) {
			c.logger.Warn("closing connection after write loop", slog.Any("error", err))
		}
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if !c.writeFrame(payload, ok) {
				return
			}
		case <-ticker.C:
			if !c.writePing() {
				return
			}
		}
	}
}

// writeFrame writes one payload, draining any frames already queued behind it.
// Returns false when the pump should stop.
func (c *Client) writeFrame(payload []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}

	if !ok {
		// The hub closed the send channel.
		_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

		return false
	}

	writer, err := c.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return false
	}

	if _, err := writer.Write(payload); err != nil {
		return false
	}

	queued := len(c.send)
	for range queued {
		if _, err := writer.Write([]byte{'\n'}); err != nil {
			return false
		}
		if _, err := writer.Write(<-c.send); err != nil {
			return false
		}
	}

	return writer.Close() == nil
}

func (c *Client) writePing() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}

	return c.conn.WriteMessage(websocket.PingMessage, nil) == nil
}

// isExpectedCloseError reports whether the error is routine connection
// teardown noise.
func isExpectedCloseError(err error) bool {
	if err == nil {
		return true
	}
	msg := err.Error()

	return strings.Contains(msg, "use of closed network connection") ||
		strings.Contains(msg, "websocket: close sent") ||
		strings.Contains(msg, "broken pipe")
}
