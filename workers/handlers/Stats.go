package handlers

import (
	"net/http"

	"goltobridge/stats"
)

// Stats serves the last derived statistics snapshot.
func Stats(w http.ResponseWriter, r *http.Request) {
	current := stats.Current()
	if current == nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Statistics not available yet",
		}, http.StatusServiceUnavailable)
		return
	}

	responseJSON(w, current, http.StatusOK)
}
