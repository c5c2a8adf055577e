package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// newTestManagerServer serves the manager over httptest. handlerDone closes
// when HandleWebSocket returns, so tests can observe connection teardown.
func newTestManagerServer(t *testing.T) (*Hub, string, <-chan struct{}) {
	t.Helper()

	hub := NewHub(16)
	t.Cleanup(hub.Close)
	manager := NewManager(hub, models.JWTConfig{Secret: testSecret})

	handlerDone := make(chan struct{})
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		defer close(handlerDone)
		return manager.HandleWebSocket(c)
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	return hub, wsURL, handlerDone
}

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.UserClaims{
		UserID:   userID,
		TenantID: uuid.New(),
		Role:     models.RoleRider,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func subscriberCount(h *Hub) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func TestManagerRejectsMissingToken(t *testing.T) {
	_, wsURL, _ := newTestManagerServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManagerRejectsBadToken(t *testing.T) {
	_, wsURL, _ := newTestManagerServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token=not-a-jwt", nil)
	require.Error(t, err)
	require.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManagerDeliversOwnNotificationsOnly(t *testing.T) {
	hub, wsURL, _ := newTestManagerServer(t)
	userID := uuid.New()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+signToken(t, userID), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return subscriberCount(hub) == 1 },
		time.Second, 10*time.Millisecond)

	hub.Publish(uuid.New(), "ride_assigned", nil)
	hub.Publish(userID, "ride_assigned", map[string]string{"ride_id": "r-1"})

	var n Notification
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&n))
	assert.Equal(t, userID, n.UserID)
	assert.Equal(t, "ride_assigned", n.Kind)
}

func TestManagerClientCloseTearsDownConnection(t *testing.T) {
	hub, wsURL, handlerDone := newTestManagerServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+signToken(t, uuid.New()), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return subscriberCount(hub) == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	select {
	case <-handlerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after client close")
	}

	// Both pumps are gone: the subscription was cancelled on the way out.
	require.Eventually(t, func() bool { return subscriberCount(hub) == 0 },
		time.Second, 10*time.Millisecond)
}

func TestManagerHubCloseClosesClient(t *testing.T) {
	hub, wsURL, _ := newTestManagerServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+signToken(t, uuid.New()), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return subscriberCount(hub) == 1 },
		time.Second, 10*time.Millisecond)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
