package websocket

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
)

const (
	// writeWait is the deadline for a single write to the peer
	writeWait = 10 * time.Second
	// pingPeriod is how often liveness probes are sent
	pingPeriod = 30 * time.Second
	// pongWait is how long to wait for a liveness signal before the
	// connection is forcibly closed
	pongWait = 2 * pingPeriod
)

// Manager upgrades and supervises client connections against the hub
type Manager struct {
	hub      *Hub
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket connection manager
func NewManager(hub *Hub, jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		hub: hub,
		cfg: jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket authenticates, upgrades and serves one client connection.
// The connection receives every notification published for its user id.
func (m *Manager) HandleWebSocket(c echo.Context) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	sub, cancel := m.hub.Subscribe()
	defer cancel()

	logger.Info("WebSocket connected",
		logger.String("user_id", claims.UserID.String()))

	done := make(chan struct{})
	go m.writePump(ws, claims.UserID.String(), sub, done)

	m.readPump(ws)
	close(done)

	logger.Info("WebSocket disconnected",
		logger.String("user_id", claims.UserID.String()))
	return nil
}

// authenticate validates the JWT from the Authorization header or the
// token query parameter.
func (m *Manager) authenticate(c echo.Context) (*models.UserClaims, error) {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing or malformed token")
		}
		tokenString = parts[1]
	}

	claims := &models.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		logger.Warn("WebSocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	if claims.UserID == uuid.Nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing user id in token")
	}

	return claims, nil
}

// readPump consumes client frames to keep the connection's liveness state
// current. Returns when the peer goes away or stops answering probes.
func (m *Manager) readPump(ws *websocket.Conn) {
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket read error", logger.Err(err))
			}
			return
		}
	}
}

// writePump forwards this user's notifications and sends liveness probes.
// Unmatched notifications are discarded here, not by the hub.
func (m *Manager) writePump(ws *websocket.Conn, userID string, sub <-chan Notification, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case n, ok := <-sub:
			if !ok {
				_ = ws.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
				return
			}
			if n.UserID.String() != userID {
				continue
			}
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteJSON(n); err != nil {
				logger.Warn("Error sending notification to client",
					logger.String("user_id", userID),
					logger.Err(err))
				_ = ws.Close()
				return
			}
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				_ = ws.Close()
				return
			}
		case <-done:
			return
		}
	}
}
