package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal010108/Halal-Market/models"
)

func dialOrderFeed(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/order-feed", OrderFeedHandler)
	srv := httptest.NewServer(r)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/order-feed"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		wsClientsMu.Lock()
		defer wsClientsMu.Unlock()
		return len(wsClients) == 1
	}, time.Second, 10*time.Millisecond, "connection must register")

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestOrderFeedDeliversBroadcast(t *testing.T) {
	conn, teardown := dialOrderFeed(t)
	defer teardown()

	broadcastNewOrder(models.Order{ID: 7, Status: models.OrderStatusPending})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"id":7`)
	assert.Contains(t, string(payload), `"status":"pending"`)
}

func TestBroadcastEvictsDeadConnections(t *testing.T) {
	conn, teardown := dialOrderFeed(t)
	defer teardown()

	require.NoError(t, conn.Close())

	// repeated broadcasts must flush the dead connection out of the set
	order := models.Order{ID: 8, Status: models.OrderStatusPending}
	require.Eventually(t, func() bool {
		broadcastNewOrder(order)
		wsClientsMu.Lock()
		defer wsClientsMu.Unlock()
		return len(wsClients) == 0
	}, 2*time.Second, 50*time.Millisecond)
}
