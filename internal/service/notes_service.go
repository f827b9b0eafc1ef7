package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/entity"
)

type NotesService struct {
	notesRepo repository.NotesRepositoryI
}

func NewNotesService(notesRepo repository.NotesRepositoryI) *NotesService {
	if notesRepo == nil {
		log.Fatal("on notes service provided nil repo")
	}
	return &NotesService{
		notesRepo: notesRepo,
	}
}

func (ns *NotesService) CreateNote(ctx context.Context, uid uuid.UUID, req CreateNoteRequest) (*entity.Note, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	note := entity.Note{
		UserID:  uid,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Pinned:  req.Pinned,
	}
	id, err := ns.notesRepo.Create(ctx, &note)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("notes repository error: %w", err)
	}
	return ns.reload(ctx, id)
}

func (ns *NotesService) GetNotes(ctx context.Context, uid uuid.UUID, tag string) ([]entity.Note, error) {
	notes, err := ns.notesRepo.List(ctx, uid, tag)
	if err != nil {
		return nil, fmt.Errorf("notes repository error: %w", err)
	}
	return notes, nil
}

func (ns *NotesService) UpdateNote(ctx context.Context, noteID, uid uuid.UUID, req UpdateNoteRequest) (*entity.Note, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ns.modify(ctx, noteID, uid, func(n *entity.Note) {
		if req.Title != nil {
			n.Title = req.Title
		}
		if req.Content != nil {
			n.Content = *req.Content
		}
		if req.Tags != nil {
			n.Tags = *req.Tags
		}
		if req.Pinned != nil {
			n.Pinned = *req.Pinned
		}
	})
}

func (ns *NotesService) TogglePin(ctx context.Context, noteID, uid uuid.UUID) (*entity.Note, error) {
	return ns.modify(ctx, noteID, uid, func(n *entity.Note) {
		n.Pinned = !n.Pinned
	})
}

func (ns *NotesService) DeleteNote(ctx context.Context, noteID, uid uuid.UUID) error {
	if err := ns.notesRepo.Delete(ctx, noteID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return err
		}
		return fmt.Errorf("notes repository error: %w", err)
	}
	return nil
}

// modify loads the note, checks the owner, applies change and stores the result.
func (ns *NotesService) modify(ctx context.Context, noteID, uid uuid.UUID, change func(*entity.Note)) (*entity.Note, error) {
	note, err := ns.notesRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("notes repository error: %w", err)
	}
	if note.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	change(note)
	if err = ns.notesRepo.Update(ctx, note); err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("notes repository error: %w", err)
	}
	return ns.reload(ctx, noteID)
}

func (ns *NotesService) reload(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	note, err := ns.notesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("notes repository error: %w", err)
	}
	return note, nil
}
