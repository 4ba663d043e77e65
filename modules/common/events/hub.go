package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		return true
	},
}

// 연결된 클라이언트 정보
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub - 스튜디오 이벤트 브로드캐스트 허브
// 엔티티 저장/생성 작업의 라이프사이클 이벤트를 연결된 클라이언트 전체에 푸시
type Hub struct {
	clients map[*client]bool
	mutex   sync.RWMutex
}

// NewHub - 이벤트 허브 생성
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
	}
}

// HandleWebSocket - GET /ws
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.mutex.Lock()
	h.clients[c] = true
	count := len(h.clients)
	h.mutex.Unlock()

	log.Printf("👤 Event client connected (total: %d)", count)

	go c.writePump()
	go h.readPump(c)
}

// Publish - 이벤트를 모든 클라이언트에게 브로드캐스트
// 느린 클라이언트는 드랍 - 요청 처리를 절대 블로킹하지 않음
func (h *Hub) Publish(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":      eventType,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for k, v := range payload {
		event[k] = v
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("⚠️  Failed to marshal event %s: %v", eventType, err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// 버퍼가 가득 찬 클라이언트는 건너뜀
		}
	}
}

// ClientCount - 연결된 클라이언트 수
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) removeClient(c *client) {
	h.mutex.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	count := len(h.clients)
	h.mutex.Unlock()

	log.Printf("👋 Event client disconnected (total: %d)", count)
}

// readPump - 클라이언트 메시지는 소비만 하고 연결 종료 감지
func (h *Hub) readPump(c *client) {
	defer func() {
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump - send 채널의 이벤트를 클라이언트로 전송
func (c *client) writePump() {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
	c.conn.Close()
}
