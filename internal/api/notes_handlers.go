package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/httputil"
)

type CreateNoteRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
	Pinned  bool     `json:"pinned"`
}

// UpdateNoteRequest fields left out of the body keep their stored values.
type UpdateNoteRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Pinned  *bool     `json:"pinned,omitempty"`
}

// GetNotes lists notes, filtered by ?tag= when given.
func (s *Server) GetNotes(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.uidOrUnauthorized(w, r, "get notes")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	notes, err := s.notesService.GetNotes(ctx, uid, r.URL.Query().Get("tag"))
	if err != nil {
		writeRecordError(w, r, "get notes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"notes": notes})
}

func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "create note")
	if !ok {
		return
	}
	var req CreateNoteRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("create note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	note, err := s.notesService.CreateNote(ctx, uid, service.CreateNoteRequest{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Pinned:  req.Pinned,
	})
	if err != nil {
		writeRecordError(w, r, "create note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("note created")
}

func (s *Server) UpdateNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.recordTarget(w, r, "update note")
	if !ok {
		return
	}
	var req UpdateNoteRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("update note error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	note, err := s.notesService.UpdateNote(ctx, id, uid, service.UpdateNoteRequest{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Pinned:  req.Pinned,
	})
	if err != nil {
		writeRecordError(w, r, "update note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
	logger.Info("note updated")
}

func (s *Server) ToggleNotePin(w http.ResponseWriter, r *http.Request) {
	uid, id, ok := s.recordTarget(w, r, "toggle note pin")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	note, err := s.notesService.TogglePin(ctx, id, uid)
	if err != nil {
		writeRecordError(w, r, "toggle note pin", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
}

func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, "delete note", s.notesService.DeleteNote)
}

// Search looks up ?q= across tasks, notes, habits and expenses.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.uidOrUnauthorized(w, r, "search")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	results, err := s.searchService.Search(ctx, uid, r.URL.Query().Get("q"))
	if err != nil {
		writeRecordError(w, r, "search", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"results": results})
}
