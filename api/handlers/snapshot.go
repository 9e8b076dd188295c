package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/protocol/across"
)

var defaultEventNames = []string{
	events.FundsDepositedSig.Name(),
	events.FilledRelaySig.Name(),
	events.RequestedSpeedUpDepositSig.Name(),
	events.RequestedSlowFillSig.Name(),
	events.ExecutedRelayerRefundRootSig.Name(),
	events.EnabledDepositRouteSig.Name(),
}

type SnapshotHandler struct {
	poolsByChain map[uint64]across.SpokePoolClient
}

func NewSnapshotHandler(poolsByChain map[uint64]across.SpokePoolClient) *SnapshotHandler {
	return &SnapshotHandler{
		poolsByChain: poolsByChain,
	}
}

// HandleRequest runs an update over the requested chain's spoke pool
// and returns the resulting snapshot. The events query parameter limits
// the update to a comma-separated list of event types.
func (h *SnapshotHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	pool, ok := h.poolsByChain[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("no spoke pool for chainID: %d", chainId.Uint64()), http.StatusNotFound)
		return
	}

	names := defaultEventNames
	if param := r.URL.Query().Get("events"); param != "" {
		names = strings.Split(param, ",")
	}

	snapshot, err := pool.Update(r.Context(), names)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	data, _ := json.Marshal(snapshot)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
