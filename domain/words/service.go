package words

import (
	"context"
	"strings"

	"github.com/lexigraph/lexigraph/pkg/apperror"
	"github.com/lexigraph/lexigraph/pkg/pgutils"
)

// wordStore is the persistence surface the service depends on.
// Satisfied by *Store.
type wordStore interface {
	List(ctx context.Context, offset, limit int) ([]*Word, error)
	GetByID(ctx context.Context, id int64) (*Word, error)
	GetByNormalizedText(ctx context.Context, normalized string) (*Word, error)
	Create(ctx context.Context, word *Word) (*Word, error)
	Update(ctx context.Context, id int64, text, normalized string) (*Word, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service handles business logic for words
type Service struct {
	store wordStore
}

// NewService creates a new words service
func NewService(store wordStore) *Service {
	return &Service{store: store}
}

// Normalize returns the canonical lookup form of a word: trimmed and lowercased.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// List returns a page of words.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*WordResponse, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	ws, err := s.store.List(ctx, offset, limit)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return ToResponseList(ws), nil
}

// GetByID returns a word by ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*WordResponse, error) {
	word, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if word == nil {
		return nil, apperror.NewNotFound("word", id)
	}

	return ToResponse(word), nil
}

// GetByText returns a word by its normalized text form.
func (s *Service) GetByText(ctx context.Context, text string) (*WordResponse, error) {
	normalized := Normalize(text)
	if normalized == "" {
		return nil, apperror.NewBadRequest("text is required")
	}

	word, err := s.store.GetByNormalizedText(ctx, normalized)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if word == nil {
		return nil, apperror.ErrNotFound.WithMessage("word '" + normalized + "' not found")
	}

	return ToResponse(word), nil
}

// Create creates a new word.
func (s *Service) Create(ctx context.Context, req *CreateWordRequest) (*WordResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperror.NewBadRequest("text is required")
	}
	normalized := Normalize(text)

	existing, err := s.store.GetByNormalizedText(ctx, normalized)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if existing != nil {
		return nil, apperror.ErrConflict.WithMessage("word '" + normalized + "' already exists")
	}

	word := &Word{
		Text:           text,
		NormalizedText: normalized,
	}

	created, err := s.store.Create(ctx, word)
	if err != nil {
		// Concurrent create of the same word loses to the unique index.
		if pgutils.IsUniqueViolation(err) {
			return nil, apperror.ErrConflict.WithMessage("word '" + normalized + "' already exists")
		}
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return ToResponse(created), nil
}

// Update updates a word's text by ID.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateWordRequest) (*WordResponse, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if existing == nil {
		return nil, apperror.NewNotFound("word", id)
	}

	if req.Text == nil {
		return nil, apperror.NewBadRequest("text is required")
	}
	text := strings.TrimSpace(*req.Text)
	if text == "" {
		return nil, apperror.NewBadRequest("text cannot be empty")
	}
	normalized := Normalize(text)

	// Reject a rename that collides with another word
	if normalized != existing.NormalizedText {
		duplicate, err := s.store.GetByNormalizedText(ctx, normalized)
		if err != nil {
			return nil, apperror.ErrDatabase.WithInternal(err)
		}
		if duplicate != nil && duplicate.ID != id {
			return nil, apperror.ErrConflict.WithMessage("word '" + normalized + "' already exists")
		}
	}

	updated, err := s.store.Update(ctx, id, text, normalized)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if updated == nil {
		return nil, apperror.NewNotFound("word", id)
	}

	return ToResponse(updated), nil
}

// Delete deletes a word by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperror.ErrDatabase.WithInternal(err)
	}
	if !deleted {
		return apperror.NewNotFound("word", id)
	}

	return nil
}
