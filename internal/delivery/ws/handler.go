package ws

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"chatline/config"
	httpmiddleware "chatline/internal/delivery/http/middleware"
	"chatline/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Handler upgrades authenticated HTTP requests to relay connections.
type Handler struct {
	hub            *Hub
	accountUsecase usecase.AccountUsecase
	logger         *slog.Logger
	upgrader       websocket.Upgrader
}

// NewHandler is the constructor for the relay handler, injected by Fx.
func NewHandler(hub *Hub, accountUsecase usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *Handler {
	allowed, allowAll := normalizeOrigins(cfg.HTTP.AllowedOrigins, logger)

	return &Handler{
		hub:            hub,
		accountUsecase: accountUsecase,
		logger:         logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r, allowed, allowAll)
			},
		},
	}
}

// Serve authenticates the request and promotes it to a WebSocket connection.
// The credential arrives in the Authorization header or, because browser
// WebSocket clients cannot set headers, in the token query parameter.
func (h *Handler) Serve(c echo.Context) error {
	token := httpmiddleware.BearerToken(c)
	if token == "" {
		token = c.QueryParam("token")
	}

	identity, err := h.accountUsecase.Authenticate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote its own HTTP error response.
		return errors.WithStack(err)
	}

	client := newClient(h.hub, conn, identity)
	h.hub.Register(client)
	client.start()

	return nil
}

// normalizeOrigins lowers and strips the configured origins to
// scheme://host form. A bare "*" entry allows every origin.
func normalizeOrigins(origins []string, logger *slog.Logger) (map[string]struct{}, bool) {
	allowed := make(map[string]struct{}, len(origins))
	allowAll := false

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			allowAll = true

			continue
		}

		normalized, ok := normalizeOrigin(trimmed)
		if !ok {
			logger.Warn("ignoring invalid configured origin", slog.String("origin", origin))

			continue
		}
		allowed[normalized] = struct{}{}
	}

	return allowed, allowAll
}

func normalizeOrigin(origin string) (string, bool) {
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", false
	}

	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host), true
}

// originAllowed admits requests without an Origin header, which come from
// non-browser clients already holding a valid credential.
func originAllowed(r *http.Request, allowed map[string]struct{}, allowAll bool) bool {
	originHeader := r.Header.Get("Origin")
	if originHeader == "" || allowAll {
		return true
	}

	normalized, ok := normalizeOrigin(originHeader)
	if !ok {
		return false
	}

	_, ok = allowed[normalized]

	return ok
}
