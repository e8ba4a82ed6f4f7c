package relations

import (
	"context"
	"fmt"

	"github.com/lexigraph/lexigraph/pkg/apperror"
	"github.com/lexigraph/lexigraph/pkg/pgutils"
)

// WordChecker reports whether a word exists. Satisfied by the words store.
type WordChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service handles business logic for word relations
type Service struct {
	store *Store
	words WordChecker
}

// NewService creates a new relations service
func NewService(store *Store, words WordChecker) *Service {
	return &Service{store: store, words: words}
}

// List returns a page of relations.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*RelationResponse, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	rels, err := s.store.List(ctx, offset, limit)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return ToResponseList(rels), nil
}

// GetByID returns a relation by ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*RelationResponse, error) {
	rel, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if rel == nil {
		return nil, apperror.NewNotFound("relation", id)
	}

	return ToResponse(rel), nil
}

// ListForWord returns relations touching a word, optionally filtered by
// direction ("outgoing" or "incoming"; empty means both).
func (s *Service) ListForWord(ctx context.Context, wordID int64, direction string) ([]*RelationResponse, error) {
	exists, err := s.words.Exists(ctx, wordID)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if !exists {
		return nil, apperror.NewNotFound("word", wordID)
	}

	var rels []*WordRelation
	switch direction {
	case "":
		rels, err = s.store.ListByWord(ctx, wordID)
	case "outgoing":
		rels, err = s.store.ListBySource(ctx, wordID)
	case "incoming":
		rels, err = s.store.ListByTarget(ctx, wordID)
	default:
		return nil, apperror.NewBadRequest("direction must be 'outgoing' or 'incoming'")
	}
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return ToResponseList(rels), nil
}

// GetBetween returns the relation from sourceID to targetID.
func (s *Service) GetBetween(ctx context.Context, sourceID, targetID int64) (*RelationResponse, error) {
	if sourceID <= 0 || targetID <= 0 {
		return nil, apperror.NewBadRequest("source_id and target_id are required")
	}

	rel, err := s.store.GetBetween(ctx, sourceID, targetID)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if rel == nil {
		return nil, apperror.ErrNotFound.WithMessage(
			fmt.Sprintf("no relation from word %d to word %d", sourceID, targetID))
	}

	return ToResponse(rel), nil
}

// Create creates a new relation between two existing words.
func (s *Service) Create(ctx context.Context, req *CreateRelationRequest) (*RelationResponse, error) {
	if req.SourceWordID <= 0 || req.TargetWordID <= 0 {
		return nil, apperror.NewBadRequest("source_word_id and target_word_id are required")
	}
	if req.SourceWordID == req.TargetWordID {
		return nil, apperror.ErrValidation.WithMessage("a word cannot relate to itself")
	}

	strength := 1.0
	if req.Strength != nil {
		strength = *req.Strength
	}
	if strength < 0 || strength > 1 {
		return nil, apperror.ErrValidation.WithMessage("strength must be between 0 and 1")
	}

	for _, id := range []int64{req.SourceWordID, req.TargetWordID} {
		exists, err := s.words.Exists(ctx, id)
		if err != nil {
			return nil, apperror.ErrDatabase.WithInternal(err)
		}
		if !exists {
			return nil, apperror.NewNotFound("word", id)
		}
	}

	existing, err := s.store.GetBetween(ctx, req.SourceWordID, req.TargetWordID)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if existing != nil {
		return nil, apperror.ErrConflict.WithMessage(
			fmt.Sprintf("relation from word %d to word %d already exists", req.SourceWordID, req.TargetWordID))
	}

	rel := &WordRelation{
		SourceWordID: req.SourceWordID,
		TargetWordID: req.TargetWordID,
		Strength:     strength,
		RelationType: req.RelationType,
		Description:  req.Description,
	}

	created, err := s.store.Create(ctx, rel)
	if err != nil {
		// The upfront checks race with concurrent writers; the database
		// constraints are authoritative.
		switch {
		case pgutils.IsUniqueViolation(err):
			return nil, apperror.ErrConflict.WithMessage(
				fmt.Sprintf("relation from word %d to word %d already exists", req.SourceWordID, req.TargetWordID))
		case pgutils.IsForeignKeyViolation(err):
			return nil, apperror.ErrNotFound.WithMessage("one of the words no longer exists")
		}
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return ToResponse(created), nil
}

// Update updates a relation's strength, type, or description by ID.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRelationRequest) (*RelationResponse, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if existing == nil {
		return nil, apperror.NewNotFound("relation", id)
	}

	if req.Strength != nil {
		if *req.Strength < 0 || *req.Strength > 1 {
			return nil, apperror.ErrValidation.WithMessage("strength must be between 0 and 1")
		}
		existing.Strength = *req.Strength
	}
	if req.RelationType != nil {
		existing.RelationType = req.RelationType
	}
	if req.Description != nil {
		existing.Description = req.Description
	}

	updated, err := s.store.Update(ctx, existing)
	if err != nil {
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	if updated == nil {
		return nil, apperror.NewNotFound("relation", id)
	}

	return ToResponse(updated), nil
}

// Delete deletes a relation by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperror.ErrDatabase.WithInternal(err)
	}
	if !deleted {
		return apperror.NewNotFound("relation", id)
	}

	return nil
}
