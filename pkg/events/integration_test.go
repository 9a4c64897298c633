package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/cardsmith/ent"
	"github.com/codeready-toolchain/cardsmith/ent/executionlog"
	"github.com/codeready-toolchain/cardsmith/pkg/database"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	testdb "github.com/codeready-toolchain/cardsmith/test/database"
	"github.com/codeready-toolchain/cardsmith/test/util"
)

// eventsTestEnv holds all wired-up components for an integration test.
type eventsTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	cardID       string
}

// setupEventsTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupEventsTest(t *testing.T) *eventsTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
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

	return &eventsTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		cardID:       uuid.New().String(),
	}
}

// card returns an entity carrying this env's card id, for payload builders.
func (env *eventsTestEnv) card(column models.Column) *ent.Card {
	return &ent.Card{
		ID:        env.cardID,
		Title:     "Integration card",
		Column:    string(column),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *eventsTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// readEventFor reads messages until one carries the given cardId. The board
// channel name is shared database-wide, so another test binary pointed at the
// same PostgreSQL may NOTIFY on it concurrently; foreign events are skipped.
func readEventFor(t *testing.T, conn *websocket.Conn, cardID string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		_, data, err := conn.Read(ctx)
		cancel()
		require.NoError(t, err)

		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		if msg["cardId"] == cardID {
			return msg
		}
	}
	t.Fatalf("no event for card %s arrived within deadline", cardID)
	return nil
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the channel, reads subscription.confirmed, and waits for
// the LISTEN to propagate. The channel must have no stored events yet,
// otherwise the auto-catchup replay would be left unread.
func (env *eventsTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the LISTEN to complete on the NotifyListener's dedicated
	// connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish a created event then a moved event for the same card
	err := env.publisher.PublishCardCreated(ctx, NewCardCreatedPayload(env.card(models.ColumnBacklog)))
	require.NoError(t, err)

	err = env.publisher.PublishCardMoved(ctx, NewCardMovedPayload(env.card(models.ColumnPlan), models.ColumnBacklog, models.ColumnPlan))
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.ListSince(ctx, CardsChannel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	require.NotNil(t, events[0].CardID)
	assert.Equal(t, env.cardID, *events[0].CardID)
	assert.Equal(t, CardsChannel, events[0].Channel)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(events[0].Payload), &first))
	assert.Equal(t, EventTypeCardCreated, first["type"])
	assert.Equal(t, env.cardID, first["cardId"])

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(events[1].Payload), &second))
	assert.Equal(t, EventTypeCardMoved, second["type"])
	assert.Equal(t, "backlog", second["fromColumn"])
	assert.Equal(t, "plan", second["toColumn"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)

	// The stored payload carries no cursor — it is injected at NOTIFY and
	// catch-up time only.
	assert.NotContains(t, first, "dbEventId")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Connect, subscribe to the board channel, and wait for LISTEN
	conn := env.subscribeAndWait(t, CardsChannel)

	// Publish a card_created event via EventPublisher
	err := env.publisher.PublishCardCreated(ctx, NewCardCreatedPayload(env.card(models.ColumnBacklog)))
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readEventFor(t, conn, env.cardID)
	assert.Equal(t, EventTypeCardCreated, msg["type"])
	assert.NotNil(t, msg["dbEventId"], "NOTIFY payload must carry the catch-up cursor")

	card, ok := msg["card"].(map[string]interface{})
	require.True(t, ok, "payload must carry the card object")
	assert.Equal(t, "Integration card", card["title"])
	assert.Equal(t, "backlog", card["column"])
}

func TestIntegration_ExecutionLogStream(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	execChannel := ExecutionChannel(env.cardID)
	conn := env.subscribeAndWait(t, execChannel)

	// Publish three log rows in order
	executionID := uuid.New().String()
	contents := []string{"Planning the change", "bash: go test ./...", "All checks passed"}
	logTypes := []executionlog.LogType{executionlog.LogTypeText, executionlog.LogTypeTool, executionlog.LogTypeResult}
	for i := range contents {
		err := env.publisher.PublishExecutionLog(ctx, NewExecutionLogPayload(env.cardID, &ent.ExecutionLog{
			ExecutionID: executionID,
			Sequence:    i + 1,
			LogType:     logTypes[i],
			Content:     contents[i],
		}))
		require.NoError(t, err)
	}

	// Execution channels embed a UUID, so no foreign traffic can interleave —
	// messages arrive in committed order.
	for i := range contents {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeExecutionLogAppended, msg["type"])
		assert.Equal(t, executionID, msg["executionId"])
		assert.Equal(t, float64(i+1), msg["sequence"])
		assert.Equal(t, contents[i], msg["content"])
	}

	// All three are persisted on the execution channel
	events, err := env.eventService.ListSince(ctx, execChannel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 board events before any client connects.
	// The card object's column encodes the publish order.
	columns := []models.Column{models.ColumnBacklog, models.ColumnPlan, models.ColumnImplement}
	for _, col := range columns {
		err := env.publisher.PublishCardUpdated(ctx, NewCardUpdatedPayload(env.card(col)))
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.ListSince(ctx, CardsChannel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates a page load after the fact)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: CardsChannel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i, col := range columns {
		msg = readEventFor(t, conn, env.cardID)
		assert.Equal(t, EventTypeCardUpdated, msg["type"])
		card := msg["card"].(map[string]interface{})
		assert.Equal(t, string(col), card["column"], "catch-up event %d out of order", i)
		assert.NotNil(t, msg["dbEventId"])
	}

	// A reconnecting client passes lastEventId — only later events replay
	conn2 := env.connectWS(t)
	readJSONTimeout(t, conn2, 5*time.Second) // connection.established

	resubMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: CardsChannel, LastEventID: &firstEventID})
	writeCtx2, cancel2 := context.WithTimeout(ctx, 5*time.Second)
	defer cancel2()
	require.NoError(t, conn2.Write(writeCtx2, websocket.MessageText, resubMsg))
	readJSONTimeout(t, conn2, 5*time.Second) // subscription.confirmed

	for _, col := range columns[1:] {
		msg = readEventFor(t, conn2, env.cardID)
		card := msg["card"].(map[string]interface{})
		assert.Equal(t, string(col), card["column"])
	}

	// Explicit catchup from the second event — should return only the third
	secondEventID := allEvents[1].ID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     CardsChannel,
		LastEventID: &secondEventID,
	})
	writeCtx3, cancel3 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel3()
	require.NoError(t, conn2.Write(writeCtx3, websocket.MessageText, catchupMsg))

	msg = readEventFor(t, conn2, env.cardID)
	card := msg["card"].(map[string]interface{})
	assert.Equal(t, "implement", card["column"])
}

func TestIntegration_TruncatedNotifyFallsBackToCatchup(t *testing.T) {
	// A payload over the NOTIFY limit is delivered live as a truncation
	// envelope, but the full payload is persisted — so catch-up (or a REST
	// reload) recovers the complete event.
	env := setupEventsTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, CardsChannel)

	oversized := env.card(models.ColumnBacklog)
	oversized.Description = strings.Repeat("The decoder must handle split chunk boundaries. ", 200)
	require.Greater(t, len(oversized.Description), 7900)

	err := env.publisher.PublishCardCreated(ctx, NewCardCreatedPayload(oversized))
	require.NoError(t, err)

	// Live delivery: truncation envelope with routing fields only
	msg := readEventFor(t, conn, env.cardID)
	assert.Equal(t, EventTypeCardCreated, msg["type"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotNil(t, msg["dbEventId"])
	assert.Nil(t, msg["card"], "envelope must not carry the oversized card object")

	// Catch-up delivery: the full stored payload, card object intact
	conn2 := env.connectWS(t)
	readJSONTimeout(t, conn2, 5*time.Second) // connection.established
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: CardsChannel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn2.Write(writeCtx, websocket.MessageText, subMsg))
	readJSONTimeout(t, conn2, 5*time.Second) // subscription.confirmed

	full := readEventFor(t, conn2, env.cardID)
	assert.Nil(t, full["truncated"])
	card, ok := full["card"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, oversized.Description, card["description"])
}
