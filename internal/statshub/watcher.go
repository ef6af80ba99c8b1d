package statshub

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

type Watcher struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Receive chan []byte

	// done is closed by the hub when it drops this watcher. Receive itself is
	// never closed, so a pump racing a drop cannot send on a closed channel.
	done chan struct{}
}

func newWatcher(hub *Hub, conn *websocket.Conn) *Watcher {
	return &Watcher{
		Hub:     hub,
		Conn:    conn,
		Receive: make(chan []byte, 4),
		done:    make(chan struct{}),
	}
}

func (w *Watcher) send(msg []byte) {
	select {
	case <-w.done:
		return
	default:
	}

	select {
	case w.Receive <- msg:
	default:
	}
}

// ReadRequests pumps preview submissions from the connection into the hub.
func (w *Watcher) ReadRequests() {
	defer func() {
		w.Hub.LeaveWatcher <- w
		w.Conn.Close()
	}()

	w.Conn.SetReadLimit(maxMessageSize)
	w.Conn.SetReadDeadline(time.Now().Add(pongWait))
	w.Conn.SetPongHandler(func(string) error {
		w.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := w.Conn.ReadMessage()
		if err != nil {
			return
		}

		var request Request
		if err := json.Unmarshal(msg, &request); err != nil {
			w.send(errorPayload(err))
			continue
		}

		request.watcher = w
		w.Hub.Requests <- request
	}
}

// WriteResults pumps calculation results from the hub out to the connection.
func (w *Watcher) WriteResults() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		w.Conn.Close()
	}()

	for {
		select {
		case message := <-w.Receive:
			w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-w.done:
			// The hub dropped this watcher.
			w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			w.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
