package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
* Dial a throwaway websocket whose server side drains frames until close
 */
func dialWebsocket(t *testing.T) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRegistry_AddGetRemove(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, 0, registry.Count())
	assert.False(t, registry.Online("P0001"))

	conn := dialWebsocket(t)
	registry.Add("P0001", conn)
	assert.True(t, registry.Online("P0001"))
	assert.Equal(t, 1, registry.Count())

	got, ok := registry.Get("P0001")
	assert.True(t, ok)
	assert.Same(t, conn, got)

	registry.Remove("P0001", conn)
	assert.False(t, registry.Online("P0001"))
	assert.Equal(t, 0, registry.Count())
}

func TestRegistry_SecondConnectionReplacesFirst(t *testing.T) {
	registry := NewRegistry()
	first := dialWebsocket(t)
	second := dialWebsocket(t)

	registry.Add("D0001", first)
	registry.Add("D0001", second)
	assert.Equal(t, 1, registry.Count())

	got, ok := registry.Get("D0001")
	assert.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistry_StaleTeardownKeepsReplacementOnline(t *testing.T) {
	registry := NewRegistry()
	first := dialWebsocket(t)
	second := dialWebsocket(t)

	registry.Add("P0001", first)
	registry.Add("P0001", second)

	// The first connection's read loop tears down after the replacement
	// already took its place. The user must stay online on the new conn.
	registry.Remove("P0001", first)
	assert.True(t, registry.Online("P0001"))
	got, ok := registry.Get("P0001")
	assert.True(t, ok)
	assert.Same(t, second, got)

	registry.Remove("P0001", second)
	assert.False(t, registry.Online("P0001"))
}

func TestRegistry_SendOfflineUser(t *testing.T) {
	registry := NewRegistry()
	online, err := registry.Send("P0001", map[string]string{"text": "hi"})
	assert.False(t, online)
	assert.NoError(t, err)
}

/*
* Two senders into one receiver must not write the conn concurrently,
* gorilla panics on overlapping writes
 */
func TestRegistry_SendSerializesWriters(t *testing.T) {
	registry := NewRegistry()
	registry.Add("D0001", dialWebsocket(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				online, err := registry.Send("D0001", map[string]string{"text": "hello"})
				assert.True(t, online)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_Close(t *testing.T) {
	registry := NewRegistry()
	registry.Add("P0001", dialWebsocket(t))
	registry.Add("D0001", dialWebsocket(t))

	registry.Close()
	assert.Equal(t, 0, registry.Count())
	assert.False(t, registry.Online("P0001"))
	assert.False(t, registry.Online("D0001"))
}
