package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"awards-board/internal/tournament"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResults struct{ res *tournament.Result }

func (s staticResults) Current(context.Context) *tournament.Result { return s.res }

func newServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub(4, nil)
	h := NewHandler(hub, staticResults{&tournament.Result{TournamentID: "42"}}, nil)

	r := gin.New()
	r.GET("/ws", h.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func TestWebsocketInitThenUpdate(t *testing.T) {
	hub, srv := newServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var init struct {
		Event string            `json:"event"`
		Data  tournament.Result `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&init))
	assert.Equal(t, EventInit, init.Event)
	assert.Equal(t, "42", init.Data.TournamentID)

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)
	hub.Broadcast(Event{Type: EventUpdate, Data: map[string]string{"tournament_id": "43"}})

	var update struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, EventUpdate, update.Event)
	assert.Equal(t, "43", update.Data["tournament_id"])
}

func TestWebsocketCloseUnsubscribes(t *testing.T) {
	hub, srv := newServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
