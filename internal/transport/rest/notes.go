package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/internal/service/note"
)

const noteNotFound = "note not found"

// noteService defines the note operations exposed over HTTP.
type noteService interface {
	List(ctx context.Context, input note.ListInput) ([]domain.Note, error)
	Get(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, input note.CreateInput) (*domain.Note, error)
	Update(ctx context.Context, input note.UpdateInput) (*domain.Note, error)
	SoftDelete(ctx context.Context, noteID uuid.UUID) error
	Restore(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	PermanentDelete(ctx context.Context, noteID uuid.UUID) error
	Duplicate(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	TogglePin(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ToggleArchive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	Export(ctx context.Context, input note.ExportInput) (*note.ExportResult, error)
	RenderHTML(ctx context.Context, noteID uuid.UUID) (string, error)
}

// NoteHandler serves the /notes REST endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
	now func() time.Time
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "notes"), now: time.Now}
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type noteResponse struct {
	ID        string     `json:"id"`
	LegacyID  string     `json:"_id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Pinned    bool       `json:"pinned"`
	Color     string     `json:"color"`
	Archived  bool       `json:"archived"`
	Trashed   bool       `json:"trashed"`
	DeletedAt *time.Time `json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

// updateNoteRequest omits deletedAt: the trash timestamp is server-owned.
type updateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Pinned   *bool   `json:"pinned"`
	Color    *string `json:"color"`
	Archived *bool   `json:"archived"`
	Trashed  *bool   `json:"trashed"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	id := n.ID.String()
	return noteResponse{
		ID:        id,
		LegacyID:  id,
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		Color:     n.Color.String(),
		Archived:  n.Archived,
		Trashed:   n.Trashed,
		DeletedAt: n.DeletedAt,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return out
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// List handles GET /notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view, err := parseView(q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	opts, hasOpts, err := parseViewOptions(q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	notes, err := h.svc.List(r.Context(), note.ListInput{View: view, Search: q.Get("search")})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if hasOpts {
		notes = note.DerivedView(notes, opts, h.now())
	}

	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	n, err := h.svc.Create(r.Context(), note.CreateInput{
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// Update handles PUT /notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	n, err := h.svc.Update(r.Context(), note.UpdateInput{
		NoteID:   id,
		Title:    req.Title,
		Content:  req.Content,
		Pinned:   req.Pinned,
		Color:    req.Color,
		Archived: req.Archived,
		Trashed:  req.Trashed,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /notes/{id}. permanent=true removes the note for
// good, otherwise it is moved to trash.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	permanent, _ := strconv.ParseBool(r.URL.Query().Get("permanent"))
	if permanent {
		if err := h.svc.PermanentDelete(r.Context(), id); err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Note permanently deleted"})
		return
	}

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Note moved to trash"})
}

// Restore handles POST /notes/{id}/restore.
func (h *NoteHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, h.svc.Restore)
}

// Duplicate handles POST /notes/{id}/duplicate.
func (h *NoteHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusCreated, h.svc.Duplicate)
}

// TogglePin handles POST /notes/{id}/pin.
func (h *NoteHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, h.svc.TogglePin)
}

// ToggleArchive handles POST /notes/{id}/archive.
func (h *NoteHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, h.svc.ToggleArchive)
}

// HTML handles GET /notes/{id}/html.
func (h *NoteHandler) HTML(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	body, err := h.svc.RenderHTML(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// Export handles GET /notes/export.
func (h *NoteHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view, err := parseView(q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	opts, _, err := parseViewOptions(q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	ids, err := parseIDs(q.Get("ids"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	format, err := domain.ParseExportFormat(q.Get("format"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.svc.Export(r.Context(), note.ExportInput{
		View:    view,
		Search:  q.Get("search"),
		Options: opts,
		IDs:     ids,
		Format:  format,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	w.Header().Set("X-Export-Count", strconv.Itoa(res.Count))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Body)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *NoteHandler) mutate(w http.ResponseWriter, r *http.Request, status int, op func(context.Context, uuid.UUID) (*domain.Note, error)) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	n, err := op(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, status, toNoteResponse(n))
}

// noteID parses the {id} path parameter. A malformed id cannot name a
// stored note, so it is reported as not found.
func (h *NoteHandler) noteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, noteNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *NoteHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err, noteNotFound)
}

// parseView reads ?view=, falling back to the legacy ?archived= / ?trashed= flags.
func parseView(q url.Values) (domain.View, error) {
	if v := q.Get("view"); v != "" {
		return domain.ParseView(v)
	}

	archived, trashed := false, false
	if v := q.Get("archived"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", domain.NewValidationError("archived", "must be true or false")
		}
		archived = b
	}
	if v := q.Get("trashed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", domain.NewValidationError("trashed", "must be true or false")
		}
		trashed = b
	}
	return domain.ViewFromFlags(archived, trashed), nil
}

// parseViewOptions reads the color/date/sort parameters. The boolean reports
// whether any of them was supplied.
func parseViewOptions(q url.Values) (domain.ViewOptions, bool, error) {
	var opts domain.ViewOptions
	colorParam, dateParam, sortParam := q.Get("color"), q.Get("date"), q.Get("sort")

	if c := strings.ToLower(strings.TrimSpace(colorParam)); c != "" && c != "all" {
		color, err := domain.ParseColor(c)
		if err != nil {
			return opts, false, err
		}
		opts.Color = &color
	}

	date, err := domain.ParseDateFilter(dateParam)
	if err != nil {
		return opts, false, err
	}
	opts.Date = date

	sortOrder, err := domain.ParseSortOrder(sortParam)
	if err != nil {
		return opts, false, err
	}
	opts.Sort = sortOrder

	return opts, colorParam != "" || dateParam != "" || sortParam != "", nil
}

func parseIDs(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, domain.NewValidationError("ids", "invalid note id "+strconv.Quote(p))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
