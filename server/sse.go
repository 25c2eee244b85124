package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/search"
)

// SSE event names.
const (
	EventStart    = "start"
	EventSnapshot = "snapshot"
	EventResult   = "result"
)

// startEvent announces a stream before the first snapshot.
type startEvent struct {
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`
	Size      int    `json:"size"`
}

// handleStream pulls snapshots from a Stepper and forwards each as an SSE
// event, pausing the requested delay between them. Snapshot events carry
// deltas only (current and discovered cells plus counts), so a run costs
// bandwidth linear in the cells it touches. The terminal snapshot is sent
// as a "result" event carrying a SearchResponse. Closing the connection
// cancels the run.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	req, err := decodeRequest(w, r, s.maxBodyBytes())
	if err != nil {
		s.fail(w, err)
		return
	}
	g, start, end, kind, err := s.prepare(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	delay, err := s.delay(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))
	st, err := search.NewStepper(g, start, end, kind,
		search.WithSnapshotSets(false),
		search.WithLogger(logger),
	)
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	send := func(event string, id int, v any) bool {
		if err := writeEvent(w, event, id, v); err != nil {
			logger.Debug("sse write failed", zap.Error(err))
			return false
		}
		flusher.Flush()
		return true
	}

	if !send(EventStart, 0, startEvent{RunID: runID, Algorithm: kind.String(), Size: g.Size()}) {
		return
	}
	for snap, err := range st.Snapshots(ctx) {
		if err != nil {
			// client gone or run aborted; nothing left to deliver
			logger.Debug("stream ended early", zap.Error(err))
			return
		}
		if snap.Done() {
			send(EventResult, snap.Step, newResponse(runID, snap.Result))
			return
		}
		if !send(EventSnapshot, snap.Step, snap) {
			return
		}
		if !sleep(ctx.Done(), delay) {
			return
		}
	}
}

// writeEvent writes one SSE frame with a JSON data line.
func writeEvent(w http.ResponseWriter, event string, id int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", event, id, data)
	return err
}

// sleep waits d and reports false if done closed first.
func sleep(done <-chan struct{}, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-done:
		return false
	case <-t.C:
		return true
	}
}
