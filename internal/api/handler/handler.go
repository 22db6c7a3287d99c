// Package handler implements the HTTP endpoints of the scan ingestion API.
package handler

import (
	"cartscan/internal/ingest"
	"cartscan/pkg/domain"
	"cartscan/pkg/gtasks"
	"cartscan/pkg/logger"
	"cartscan/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies on the scan endpoints.
const maxBodyBytes = 1 << 16

// IngestService is the slice of the ingestion service the handlers need.
type IngestService interface {
	Ingest(ctx context.Context, scan ingest.Scan) (ingest.Result, error)
	Recent(ctx context.Context) ([]domain.ScanEvent, error)
	ClearRecent(ctx context.Context) (int64, error)
}

// TasklistService exposes the task list selection endpoints.
type TasklistService interface {
	Lists(ctx context.Context) ([]gtasks.TaskList, error)
	Select(ctx context.Context, listID string) (gtasks.TaskList, error)
	Selected() string
}

// Deps are the collaborators the handlers delegate to. Tasks may be nil when
// the Google Tasks mirror is not configured.
type Deps struct {
	Ingest        IngestService
	Tasks         TasklistService
	Sec           *SecHandler
	Status        *ScannerStatus
	PicnicEnabled bool
}

// Handler serves the scan ingestion API.
type Handler struct {
	deps Deps
}

// New constructs a Handler.
func New(deps Deps) *Handler {
	if deps.Status == nil {
		deps.Status = NewScannerStatus()
	}

	return &Handler{deps: deps}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /scan", h.scan)
	mux.HandleFunc("GET /recent", h.recent)
	mux.HandleFunc("POST /recent/clear", h.clearRecent)
	mux.HandleFunc("GET /scanner-status", h.scannerStatus)
	mux.HandleFunc("GET /tasklists", h.tasklists)
	mux.HandleFunc("POST /tasklists/select", h.selectTasklist)
	mux.HandleFunc("GET /healthz", h.healthz)
}

// scanRequest is the wire shape of one scan submission.
type scanRequest struct {
	Barcode  string          `json:"barcode"`
	Code     string          `json:"code"`
	Title    string          `json:"title"`
	Token    string          `json:"token"`
	Quantity json.RawMessage `json:"quantity"`
}

// scanResponse reports the synchronous outcome of a scan submission. Cart
// synchronization itself is asynchronous; picnic_ok reflects whether a sync
// was enqueued.
type scanResponse struct {
	OK            bool             `json:"ok"`
	Message       string           `json:"message"`
	PicnicEnabled bool             `json:"picnic_enabled"`
	PicnicOK      bool             `json:"picnic_ok"`
	PicnicMessage string           `json:"picnic_message"`
	Event         domain.ScanEvent `json:"event"`
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	var req scanRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON payload"))

			return
		}
	}

	if err := h.deps.Sec.Verify(r, req.Token); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	raw := req.Barcode
	if raw == "" {
		raw = req.Code
	}

	result, err := h.deps.Ingest.Ingest(r.Context(), ingest.Scan{
		Raw:      raw,
		Title:    req.Title,
		Quantity: parseQuantity(req.Quantity),
	})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	h.deps.Status.MarkScan()

	resp := scanResponse{
		OK:            true,
		Message:       "scan accepted",
		PicnicEnabled: h.deps.PicnicEnabled,
		PicnicOK:      result.Enqueued,
		Event:         result.Event,
	}
	switch {
	case result.Duplicate:
		resp.Message = "duplicate scan ignored"
		resp.PicnicMessage = "cart sync skipped for duplicate"
		if result.PendingSyncs > 0 {
			resp.PicnicMessage = "cart sync already pending for this code"
		}
	case result.Enqueued:
		resp.PicnicMessage = "cart sync enqueued"
	case h.deps.PicnicEnabled:
		resp.PicnicMessage = "cart sync not enqueued"
	default:
		resp.PicnicMessage = "cart sync disabled"
	}

	writeJSON(r.Context(), w, http.StatusOK, resp)
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	events, err := h.deps.Ingest.Recent(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	if events == nil {
		events = []domain.ScanEvent{}
	}

	writeJSON(r.Context(), w, http.StatusOK, events)
}

func (h *Handler) clearRecent(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.deps.Ingest.ClearRecent(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"ok":      true,
		"cleared": cleared,
	})
}

func (h *Handler) scannerStatus(w http.ResponseWriter, r *http.Request) {
	connected := h.deps.Status.Connected()
	message := "no scanner has delivered scans recently"
	if connected {
		message = "scanner delivering scans"
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"connected": connected,
		"enabled":   h.deps.PicnicEnabled,
		"supported": true,
		"message":   message,
	})
}

func (h *Handler) tasklists(w http.ResponseWriter, r *http.Request) {
	if h.deps.Tasks == nil {
		writeError(r.Context(), w, serrors.With(serrors.ErrConfiguration, "task lists are not configured"))

		return
	}

	lists, err := h.deps.Tasks.Lists(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	if lists == nil {
		lists = []gtasks.TaskList{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"items":    lists,
		"selected": h.deps.Tasks.Selected(),
	})
}

func (h *Handler) selectTasklist(w http.ResponseWriter, r *http.Request) {
	if h.deps.Tasks == nil {
		writeError(r.Context(), w, serrors.With(serrors.ErrConfiguration, "task lists are not configured"))

		return
	}

	var req struct {
		TasklistID string `json:"tasklist_id"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON payload"))

		return
	}
	if req.TasklistID == "" {
		writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "tasklist_id is required"))

		return
	}

	selected, err := h.deps.Tasks.Select(r.Context(), req.TasklistID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"ok": true, "title": selected.Title})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"status": "ok"})
}

// parseQuantity accepts a number or a numeric string; anything else means 1.
func parseQuantity(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 1
		}
		n = json.Number(s)
	}

	f, err := n.Float64()
	if err != nil || f < 1 {
		return 1
	}

	return int(f)
}

// statusOf maps error kinds to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrUnauthorized), errors.Is(err, serrors.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrBadRequest), errors.Is(err, serrors.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	writeJSON(ctx, w, status, map[string]any{
		"ok":    false,
		"error": err.Error(),
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
