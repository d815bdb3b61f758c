// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type EventHandler struct {
	journal voting.Journal
}

func NewEventHandler(journal voting.Journal) *EventHandler {
	return &EventHandler{journal: journal}
}

// ListEvents handles GET /events?after={seq}
// Returns the events of every journal entry with a sequence above after
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var after int64
	if raw := r.URL.Query().Get("after"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "after must be a non-negative integer")
			return
		}
		after = n
	}

	entries, err := h.journal.Entries(r.Context())
	if err != nil {
		slog.Error("failed to load journal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	resp := models.EventsResponse{Events: []models.Event{}, LastSeq: after}
	for _, entry := range entries {
		if entry.Seq <= after {
			continue
		}
		for _, ev := range entry.Events {
			resp.Events = append(resp.Events, models.Event{
				Seq:        entry.Seq,
				Name:       ev.EventName(),
				Payload:    ev,
				RecordedAt: entry.RecordedAt,
			})
		}
		resp.LastSeq = entry.Seq
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
