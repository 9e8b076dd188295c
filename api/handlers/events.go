package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sprintertech/across-testkit/store"
)

type EventsHandler struct {
	storesByChain map[uint64]*store.EventStore
}

func NewEventsHandler(storesByChain map[uint64]*store.EventStore) *EventsHandler {
	return &EventsHandler{
		storesByChain: storesByChain,
	}
}

// HandleRequest returns the synthesized events of the requested chain,
// grouped by block
func (h *EventsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	st, ok := h.storesByChain[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("no event store for chainID: %d", chainId.Uint64()), http.StatusNotFound)
		return
	}

	data, _ := json.Marshal(st.AllEvents())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
