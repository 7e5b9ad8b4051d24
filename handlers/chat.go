package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/parrilleros/kiosk/chat"
)

// Chat answers one assistant message against the live catalog and the
// current cart.
func (a *API) Chat(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Message string `json:"message"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	menu, err := a.catalog.MenuItems("")
	if err != nil {
		http.Error(w, "failed to query menu", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, chat.Reply(menu, len(a.engine.Cart()), req.Message))
}
