package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveCustomStats upgrades the connection and registers it with the hub.
// Each message the client sends is a preview request; the hub answers with
// the full ranked result set for that formula and scope.
func (app *application) LiveCustomStats(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.PrintError(err, nil)
		return
	}

	app.statsHub.AddWatcher(conn)
}

// livePreviewPayload runs a calculation on behalf of a watcher and marshals
// the outcome into the payload sent back over the socket.
func (app *application) livePreviewPayload(rawFormula, season string) ([]byte, error) {
	results, err := app.runCalculation(rawFormula, season)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{"results": results})
}
