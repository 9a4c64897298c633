package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests. It behaves like the
// real event store: filters by sinceID and honors the page limit.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]CatchupEvent, 0, len(m.events))
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func newManagerServer(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	return newManagerServer(t, &mockCatchupQuerier{})
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, _ := json.Marshal(msg)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connectionId"])
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)

	// Read connection.established
	readJSON(t, conn)

	// Subscribe
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})

	// Read subscription confirmation
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, CardsChannel, msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount(CardsChannel) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())

	// Unsubscribe — the subscriber map should drain
	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: CardsChannel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(CardsChannel) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	// Connect two clients and subscribe both to same channel
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)

	// Read connection.established for both
	readJSON(t, conn1)
	readJSON(t, conn2)

	// Subscribe both to the board channel
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: CardsChannel})

	// Read subscription confirmations
	readJSON(t, conn1)
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(CardsChannel) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast a message
	payload, _ := json.Marshal(map[string]string{"type": "card_updated", "cardId": "card-b1"})
	manager.Broadcast(CardsChannel, payload)

	// Both clients should receive the message
	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, "card_updated", msg1["type"])
	assert.Equal(t, "card-b1", msg1["cardId"])
	assert.Equal(t, "card_updated", msg2["type"])
	assert.Equal(t, "card-b1", msg2["cardId"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	// Read connection.established
	readJSON(t, conn)

	// Send ping
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})

	// Expect pong
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_AutoCatchupOnSubscribe(t *testing.T) {
	// Subscribing replays the stored window in order, with dbEventId injected
	// from the DB row id.
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": "card_created", "seq": float64(1)}},
		{ID: 11, Payload: map[string]interface{}{"type": "card_moved", "seq": float64(2)}},
		{ID: 12, Payload: map[string]interface{}{"type": "card_updated", "seq": float64(3)}},
	}
	_, server := newManagerServer(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn) // subscription.confirmed

	for i := 1; i <= 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i), msg["seq"])
		assert.Equal(t, float64(9+i), msg["dbEventId"], "catch-up events must carry the cursor")
	}

	// No overflow should follow — try read with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive overflow message for small catchup")
}

func TestConnectionManager_SubscribeWithLastEventID(t *testing.T) {
	// A reconnecting client passes its last seen id; only later events replay.
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"seq": float64(1)}},
		{ID: 11, Payload: map[string]interface{}{"seq": float64(2)}},
		{ID: 12, Payload: map[string]interface{}{"seq": float64(3)}},
	}
	_, server := newManagerServer(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	last := 11
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel, LastEventID: &last})
	readJSON(t, conn) // subscription.confirmed

	msg := readJSON(t, conn)
	assert.Equal(t, float64(3), msg["seq"])
	assert.Equal(t, float64(12), msg["dbEventId"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "events at or before lastEventId must not replay")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	// Rig the querier with more events than one catch-up page holds.
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID: i + 1,
			Payload: map[string]interface{}{
				"type": "card_updated",
				"seq":  i,
			},
		}
	}
	_, server := newManagerServer(t, &mockCatchupQuerier{events: manyEvents})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribe — auto-catchup delivers a full page then the overflow marker.
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["hasMore"])
			assert.Equal(t, CardsChannel, msg["channel"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_ExplicitCatchup(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"seq": float64(1)}},
		{ID: 11, Payload: map[string]interface{}{"seq": float64(2)}},
		{ID: 12, Payload: map[string]interface{}{"seq": float64(3)}},
	}
	_, server := newManagerServer(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn) // subscription.confirmed
	for i := 0; i < 3; i++ {
		readJSON(t, conn) // drain auto-catchup
	}

	// Re-sync from id 11 without resubscribing
	last := 11
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: CardsChannel, LastEventID: &last})

	msg := readJSON(t, conn)
	assert.Equal(t, float64(3), msg["seq"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount(CardsChannel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast 20 messages concurrently
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": "card_updated", "idx": idx})
			manager.Broadcast(CardsChannel, payload)
		}(i)
	}
	wg.Wait()

	// Read all 20 messages (order may vary due to concurrency)
	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	// Should not panic
	payload, _ := json.Marshal(map[string]string{"type": "card_updated"})
	manager.Broadcast("execution:no-subscribers", payload)
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// A board subscriber must not receive another card's execution stream.
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2) // connection.established

	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn1) // subscription.confirmed

	execChannel := ExecutionChannel("card-iso")
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: execChannel})
	readJSON(t, conn2) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount(CardsChannel) == 1 && manager.subscriberCount(execChannel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast to the execution channel — only conn2 should receive
	payload, _ := json.Marshal(map[string]string{"type": "execution_log_appended", "cardId": "card-iso"})
	manager.Broadcast(execChannel, payload)

	msg := readJSON(t, conn2)
	assert.Equal(t, "execution_log_appended", msg["type"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn1.Read(readCtx)
	assert.Error(t, err, "board subscriber should not receive execution broadcast")
}

func TestConnectionManager_UnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn) // subscription.confirmed

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: CardsChannel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(CardsChannel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcast — should NOT be received
	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(CardsChannel, payload)

	// Try to read — should timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()

	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// Catchup error should be logged but not crash the connection.
	// Verify the connection remains usable after a catchup query failure.
	_, server := newManagerServer(t, &mockCatchupQuerier{err: fmt.Errorf("database unreachable")})

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: CardsChannel})
	readJSON(t, conn) // subscription.confirmed — auto-catchup fails silently

	// Connection should still be alive — ping/pong works
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribe with empty channel should return error
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Unsubscribe with empty channel should return error
	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Catchup with empty channel should return error
	last := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "", LastEventID: &last})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection should still be alive after validation errors
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	// Connect and subscribe
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	// Read connection.established
	_, _, err = conn.Read(ctx)
	require.NoError(t, err)

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: CardsChannel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	// Close the connection
	conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond, "connection should be cleaned up")

	// Broadcast should not panic
	payload, _ := json.Marshal(map[string]string{"type": "card_updated"})
	assert.NotPanics(t, func() {
		manager.Broadcast(CardsChannel, payload)
	})
}
