// Package statshub manages live formula preview connections: each watching
// client submits formula drafts over a websocket and receives freshly ranked
// results, the way the in-app stat builder previews a formula on every edit.
package statshub

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// CalcFunc runs one calculation and returns the encoded response payload.
// Structural formula errors come back as an error and are relayed to the
// submitting watcher only.
type CalcFunc func(formula, season string) ([]byte, error)

// Request is one preview submission from a watcher.
type Request struct {
	watcher *Watcher
	Formula string `json:"formula"`
	Season  string `json:"season,omitempty"`
}

type Hub struct {
	calc         CalcFunc
	watchers     map[*Watcher]bool
	Requests     chan Request
	JoinWatcher  chan *Watcher
	LeaveWatcher chan *Watcher
	Broadcast    chan []byte
}

func New(calc CalcFunc) *Hub {
	return &Hub{
		calc:         calc,
		watchers:     make(map[*Watcher]bool),
		Requests:     make(chan Request),
		JoinWatcher:  make(chan *Watcher),
		LeaveWatcher: make(chan *Watcher),
		Broadcast:    make(chan []byte),
	}
}

// AddWatcher registers conn with the hub and starts its read and write pumps.
func (h *Hub) AddWatcher(conn *websocket.Conn) *Watcher {
	watcher := newWatcher(h, conn)
	h.JoinWatcher <- watcher

	go watcher.ReadRequests()
	go watcher.WriteResults()

	return watcher
}

func (h *Hub) Run() {
	for {
		select {
		case watcher := <-h.JoinWatcher:
			h.watchers[watcher] = true
		case watcher := <-h.LeaveWatcher:
			h.dropWatcher(watcher)
		case request := <-h.Requests:
			// A watcher dropped for falling behind may still have a request
			// in flight; discard it rather than answer a departed client.
			if _, ok := h.watchers[request.watcher]; !ok {
				continue
			}

			payload, err := h.calc(request.Formula, request.Season)
			if err != nil {
				payload = errorPayload(err)
			}
			request.watcher.send(payload)
		case msg := <-h.Broadcast:
			h.ToAllWatchers(msg)
		}
	}
}

func (h *Hub) ToAllWatchers(msg []byte) {
	for watcher := range h.watchers {
		select {
		case watcher.Receive <- msg:
		default:
			h.dropWatcher(watcher)
		}
	}
}

func (h *Hub) dropWatcher(watcher *Watcher) {
	if _, ok := h.watchers[watcher]; ok {
		delete(h.watchers, watcher)
		close(watcher.done)
	}
}

func errorPayload(err error) []byte {
	payload, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return []byte(`{"error":"calculation failed"}`)
	}
	return payload
}
