package kit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: reqID,
	})
}

// StartEventStream writes the Server-Sent Events response header and flushes
// it so the client knows the stream is live.
func StartEventStream(w http.ResponseWriter) error {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": stream open\n\n"); err != nil {
		return err
	}
	return http.NewResponseController(w).Flush()
}

// WriteEvent writes one SSE frame with a JSON payload and flushes it. id is
// omitted when zero.
func WriteEvent(w http.ResponseWriter, id uint64, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	frame := make([]byte, 0, len(data)+64)
	if id != 0 {
		frame = append(frame, "id: "...)
		frame = strconv.AppendUint(frame, id, 10)
		frame = append(frame, '\n')
	}
	frame = append(frame, "event: "...)
	frame = append(frame, event...)
	frame = append(frame, "\ndata: "...)
	frame = append(frame, data...)
	frame = append(frame, "\n\n"...)

	if _, err := w.Write(frame); err != nil {
		return err
	}
	return http.NewResponseController(w).Flush()
}
