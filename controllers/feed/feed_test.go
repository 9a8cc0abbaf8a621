package feed

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/ayounioptic/models"
)

func TestBroadcastReachesConnectedClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	hub := NewHub(log)
	r := gin.New()
	r.GET("/ws/orders", hub.Handle)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens in the handler goroutine; give it a beat.
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastOrder(models.Order{ID: 7, CustomerName: "Amine", Status: models.OrderStatusPending})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Amine", got.CustomerName)
}

func TestBroadcastWithNoClients(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	hub := NewHub(log)
	// Must not panic or block.
	hub.BroadcastOrder(models.Order{ID: 1})
}
