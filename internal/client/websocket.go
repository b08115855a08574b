package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ErrNotConnected is returned when a request is made without a live connection
var ErrNotConnected = errors.New("websocket not connected")

// WSClient represents a Solana pubsub WebSocket client. A single read loop
// owns the connection and reconnects with resubscription when it drops.
type WSClient struct {
	url            string
	logger         *logrus.Logger
	mu             sync.RWMutex
	writeMu        sync.Mutex
	conn           *websocket.Conn
	subscriptions  map[int]*Subscription
	serverIDs      map[int]int // server subscription id -> local id
	pending        map[int]int // request id -> local id
	nextID         int
	started        bool
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	reconnectDelay time.Duration
	readTimeout    time.Duration
	pingInterval   time.Duration

	messagesReceived atomic.Uint64
	messagesSent     atomic.Uint64
	reconnectCount   atomic.Uint64
}

// Subscription tracks one logical subscription across reconnects
type Subscription struct {
	ID          int
	ServerID    int
	Method      string
	Params      interface{}
	Handler     EventHandler
	Active      bool
	Created     time.Time
	LastMessage time.Time
}

// EventHandler receives the raw params object of a notification
type EventHandler func(params json.RawMessage) error

// LogsHandler receives decoded logsNotification params
type LogsHandler func(notification LogsNotification) error

// WSMessage is an inbound JSON-RPC frame
type WSMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *int              `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  json.RawMessage   `json:"params,omitempty"`
	Result  json.RawMessage   `json:"result,omitempty"`
	Error   *jsonrpc.RPCError `json:"error,omitempty"`
}

type wsRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// LogsNotification represents a logs notification
type LogsNotification struct {
	Subscription int `json:"subscription"`
	Result       struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value struct {
			Signature string      `json:"signature"`
			Err       interface{} `json:"err"`
			Logs      []string    `json:"logs"`
		} `json:"value"`
	} `json:"result"`
}

// NewWSClient creates a new WebSocket client
func NewWSClient(url string, logger *logrus.Logger) *WSClient {
	ctx, cancel := context.WithCancel(context.Background())

	return &WSClient{
		url:            url,
		logger:         logger,
		subscriptions:  make(map[int]*Subscription),
		serverIDs:      make(map[int]int),
		pending:        make(map[int]int),
		ctx:            ctx,
		cancel:         cancel,
		reconnectDelay: 5 * time.Second,
		readTimeout:    90 * time.Second,
		pingInterval:   30 * time.Second,
	}
}

// SetReconnectDelay sets the pause between reconnect attempts
func (ws *WSClient) SetReconnectDelay(d time.Duration) {
	ws.reconnectDelay = d
}

// Connect establishes the WebSocket connection and starts the read loop
func (ws *WSClient) Connect() error {
	if ws.ctx.Err() != nil {
		return fmt.Errorf("websocket client closed")
	}

	ws.mu.RLock()
	connected := ws.conn != nil
	ws.mu.RUnlock()
	if connected {
		return nil
	}

	conn, err := ws.dial()
	if err != nil {
		return err
	}

	ws.mu.Lock()
	ws.conn = conn
	start := !ws.started
	ws.started = true
	ws.mu.Unlock()

	ws.logger.WithField("url", ws.url).Info("✅ WebSocket connected")

	if start {
		ws.wg.Add(2)
		go ws.readLoop()
		go ws.pingLoop()
	}
	return nil
}

func (ws *WSClient) dial() (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 10 * time.Second,
	}

	conn, resp, err := dialer.DialContext(ws.ctx, ws.url, nil)
	if err != nil {
		if resp != nil {
			ws.logger.WithFields(logrus.Fields{
				"status_code": resp.StatusCode,
				"url":         ws.url,
			}).Error("❌ WebSocket handshake failed")
		}
		return nil, fmt.Errorf("failed to connect to WebSocket: %w", err)
	}

	conn.SetReadLimit(4 << 20)
	conn.SetReadDeadline(time.Now().Add(ws.readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(ws.readTimeout))
	})
	return conn, nil
}

// Disconnect closes the connection and waits for the background loops to exit
func (ws *WSClient) Disconnect() error {
	ws.cancel()

	ws.mu.Lock()
	conn := ws.conn
	ws.conn = nil
	ws.mu.Unlock()

	var err error
	if conn != nil {
		ws.writeMu.Lock()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		ws.writeMu.Unlock()
		err = conn.Close()
	}

	ws.wg.Wait()
	return err
}

// Subscribe registers a subscription and sends the request. The returned id
// is local and stays valid across reconnects.
func (ws *WSClient) Subscribe(method string, params interface{}, handler EventHandler) (int, error) {
	ws.mu.Lock()
	if ws.conn == nil {
		ws.mu.Unlock()
		return 0, ErrNotConnected
	}
	ws.nextID++
	sub := &Subscription{
		ID:      ws.nextID,
		Method:  method,
		Params:  params,
		Handler: handler,
		Created: time.Now(),
	}
	ws.subscriptions[sub.ID] = sub
	ws.mu.Unlock()

	if err := ws.sendSubscribe(sub); err != nil {
		ws.mu.Lock()
		delete(ws.subscriptions, sub.ID)
		ws.mu.Unlock()
		return 0, fmt.Errorf("failed to send subscription: %w", err)
	}

	ws.logger.WithFields(logrus.Fields{
		"method": method,
		"id":     sub.ID,
	}).Debug("📡 Subscription request sent")

	return sub.ID, nil
}

func (ws *WSClient) sendSubscribe(sub *Subscription) error {
	ws.mu.Lock()
	ws.nextID++
	reqID := ws.nextID
	ws.pending[reqID] = sub.ID
	ws.mu.Unlock()

	err := ws.sendMessage(wsRequest{JSONRPC: "2.0", ID: reqID, Method: sub.Method, Params: sub.Params})
	if err != nil {
		ws.mu.Lock()
		delete(ws.pending, reqID)
		ws.mu.Unlock()
	}
	return err
}

// Unsubscribe cancels a subscription
func (ws *WSClient) Unsubscribe(id int) error {
	ws.mu.Lock()
	sub, exists := ws.subscriptions[id]
	if !exists {
		ws.mu.Unlock()
		return fmt.Errorf("subscription %d not found", id)
	}
	delete(ws.subscriptions, id)
	if sub.Active {
		delete(ws.serverIDs, sub.ServerID)
	}
	ws.nextID++
	reqID := ws.nextID
	ws.mu.Unlock()

	if !sub.Active {
		return nil
	}

	unsubMethod := getUnsubscribeMethod(sub.Method)
	if unsubMethod == "" {
		return fmt.Errorf("unknown unsubscribe method for %s", sub.Method)
	}

	if err := ws.sendMessage(wsRequest{
		JSONRPC: "2.0",
		ID:      reqID,
		Method:  unsubMethod,
		Params:  []interface{}{sub.ServerID},
	}); err != nil {
		return fmt.Errorf("failed to send unsubscribe: %w", err)
	}

	ws.logger.WithField("id", id).Info("🗑️ Subscription cancelled")
	return nil
}

// SubscribeToLogs subscribes to logs mentioning an address, or "all"
func (ws *WSClient) SubscribeToLogs(mentions string, handler LogsHandler) (int, error) {
	var filter interface{} = "all"
	if mentions != "all" {
		filter = map[string]interface{}{
			"mentions": []string{mentions},
		}
	}
	params := []interface{}{
		filter,
		map[string]interface{}{
			"commitment": "confirmed",
		},
	}

	return ws.Subscribe("logsSubscribe", params, func(raw json.RawMessage) error {
		var notification LogsNotification
		if err := json.Unmarshal(raw, &notification); err != nil {
			return fmt.Errorf("failed to unmarshal logs notification: %w", err)
		}
		return handler(notification)
	})
}

func (ws *WSClient) sendMessage(message wsRequest) error {
	ws.mu.RLock()
	conn := ws.conn
	ws.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ws.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	ws.writeMu.Unlock()
	if err != nil {
		return err
	}

	ws.messagesSent.Add(1)
	return nil
}

func (ws *WSClient) readLoop() {
	defer ws.wg.Done()
	defer ws.logger.Debug("🛑 WebSocket read loop stopped")

	for {
		ws.mu.RLock()
		conn := ws.conn
		ws.mu.RUnlock()

		if conn == nil {
			if !ws.reconnect() {
				return
			}
			continue
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if ws.ctx.Err() != nil {
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ws.logger.WithError(err).Warn("⚠️ WebSocket read error")
			}
			ws.dropConnection(conn)
			continue
		}

		conn.SetReadDeadline(time.Now().Add(ws.readTimeout))
		ws.messagesReceived.Add(1)
		ws.handleMessage(data)
	}
}

// dropConnection forgets server-side state tied to conn
func (ws *WSClient) dropConnection(conn *websocket.Conn) {
	ws.mu.Lock()
	if ws.conn == conn {
		ws.conn = nil
		ws.serverIDs = make(map[int]int)
		ws.pending = make(map[int]int)
		for _, sub := range ws.subscriptions {
			sub.Active = false
		}
	}
	ws.mu.Unlock()
	conn.Close()
}

// reconnect dials until it succeeds or the client is closed
func (ws *WSClient) reconnect() bool {
	for {
		select {
		case <-ws.ctx.Done():
			return false
		case <-time.After(ws.reconnectDelay):
		}

		attempt := ws.reconnectCount.Add(1)
		conn, err := ws.dial()
		if err != nil {
			ws.logger.WithError(err).WithField("attempt", attempt).Warn("🔄 Reconnect failed")
			continue
		}

		ws.mu.Lock()
		if ws.ctx.Err() != nil {
			ws.mu.Unlock()
			conn.Close()
			return false
		}
		ws.conn = conn
		subs := make([]*Subscription, 0, len(ws.subscriptions))
		for _, sub := range ws.subscriptions {
			subs = append(subs, sub)
		}
		ws.mu.Unlock()

		resubscribed := 0
		for _, sub := range subs {
			if err := ws.sendSubscribe(sub); err != nil {
				ws.logger.WithError(err).WithField("method", sub.Method).Error("❌ Failed to resubscribe")
				continue
			}
			resubscribed++
		}

		ws.logger.WithFields(logrus.Fields{
			"attempt":      attempt,
			"resubscribed": resubscribed,
		}).Info("✅ WebSocket reconnected")
		return true
	}
}

func (ws *WSClient) handleMessage(data []byte) {
	var message WSMessage
	if err := json.Unmarshal(data, &message); err != nil {
		ws.logger.WithError(err).Error("❌ Failed to unmarshal WebSocket message")
		return
	}

	switch {
	case message.ID != nil:
		ws.handleResponse(message)
	case message.Method != "":
		ws.handleNotification(message)
	}
}

func (ws *WSClient) handleResponse(message WSMessage) {
	ws.mu.Lock()
	localID, isSubscribe := ws.pending[*message.ID]
	delete(ws.pending, *message.ID)
	sub := ws.subscriptions[localID]
	var method string
	if isSubscribe && sub != nil && message.Error == nil {
		var serverID int
		if err := json.Unmarshal(message.Result, &serverID); err == nil {
			sub.ServerID = serverID
			sub.Active = true
			ws.serverIDs[serverID] = sub.ID
			method = sub.Method
		}
	}
	ws.mu.Unlock()

	if message.Error != nil {
		ws.logger.WithFields(logrus.Fields{
			"id":      *message.ID,
			"code":    message.Error.Code,
			"message": message.Error.Message,
		}).Error("❌ WebSocket error received")
		return
	}
	if method != "" {
		ws.logger.WithFields(logrus.Fields{
			"method": method,
			"id":     localID,
		}).Info("✅ WebSocket subscription confirmed")
	}
}

func (ws *WSClient) handleNotification(message WSMessage) {
	var envelope struct {
		Subscription int `json:"subscription"`
	}
	if err := json.Unmarshal(message.Params, &envelope); err != nil {
		ws.logger.WithError(err).WithField("method", message.Method).Error("❌ Failed to unmarshal notification")
		return
	}

	ws.mu.Lock()
	var handler EventHandler
	localID, ok := ws.serverIDs[envelope.Subscription]
	if sub := ws.subscriptions[localID]; ok && sub != nil {
		sub.LastMessage = time.Now()
		handler = sub.Handler
	}
	ws.mu.Unlock()

	if handler == nil {
		ws.logger.WithFields(logrus.Fields{
			"method":       message.Method,
			"subscription": envelope.Subscription,
		}).Debug("❓ Notification for unknown subscription")
		return
	}

	go func(params json.RawMessage) {
		if err := handler(params); err != nil {
			ws.logger.WithError(err).WithField("subscription_id", localID).Error("❌ Notification handler error")
		}
	}(message.Params)
}

func (ws *WSClient) pingLoop() {
	defer ws.wg.Done()

	ticker := time.NewTicker(ws.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ws.ctx.Done():
			return
		case <-ticker.C:
			ws.mu.RLock()
			conn := ws.conn
			ws.mu.RUnlock()

			if conn != nil {
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					ws.logger.WithError(err).Debug("Failed to send ping")
				}
			}
		}
	}
}

// GetConnectionStats returns current connection statistics
func (ws *WSClient) GetConnectionStats() map[string]interface{} {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	active := 0
	for _, sub := range ws.subscriptions {
		if sub.Active {
			active++
		}
	}

	return map[string]interface{}{
		"messages_received":    ws.messagesReceived.Load(),
		"messages_sent":        ws.messagesSent.Load(),
		"active_subscriptions": active,
		"total_subscriptions":  len(ws.subscriptions),
		"reconnect_count":      ws.reconnectCount.Load(),
		"connection_active":    ws.conn != nil,
	}
}

// getUnsubscribeMethod returns the unsubscribe method name for a subscribe method
func getUnsubscribeMethod(subscribeMethod string) string {
	switch subscribeMethod {
	case "blockSubscribe":
		return "blockUnsubscribe"
	case "logsSubscribe":
		return "logsUnsubscribe"
	case "accountSubscribe":
		return "accountUnsubscribe"
	case "programSubscribe":
		return "programUnsubscribe"
	case "signatureSubscribe":
		return "signatureUnsubscribe"
	case "slotSubscribe":
		return "slotUnsubscribe"
	default:
		return ""
	}
}
