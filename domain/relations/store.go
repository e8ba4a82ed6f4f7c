package relations

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Store struct {
	db bun.IDB
}

func NewStore(db bun.IDB) *Store {
	return &Store{db: db}
}

func (s *Store) GetByID(ctx context.Context, id int64) (*WordRelation, error) {
	rel := new(WordRelation)
	err := s.db.NewSelect().Model(rel).Where("wr.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rel, nil
}

// GetBetween returns the relation from source to target, if one exists.
// Direction matters; the reverse pair is a distinct row.
func (s *Store) GetBetween(ctx context.Context, sourceID, targetID int64) (*WordRelation, error) {
	rel := new(WordRelation)
	err := s.db.NewSelect().
		Model(rel).
		Where("wr.source_word_id = ?", sourceID).
		Where("wr.target_word_id = ?", targetID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *Store) List(ctx context.Context, offset, limit int) ([]*WordRelation, error) {
	var rels []*WordRelation
	err := s.db.NewSelect().
		Model(&rels).
		Order("wr.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rels, nil
}

// ListByWord returns every relation that touches the word as either
// endpoint, ordered by id so listings are stable.
func (s *Store) ListByWord(ctx context.Context, wordID int64) ([]*WordRelation, error) {
	var rels []*WordRelation
	err := s.db.NewSelect().
		Model(&rels).
		Where("wr.source_word_id = ? OR wr.target_word_id = ?", wordID, wordID).
		Order("wr.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rels, nil
}

func (s *Store) ListBySource(ctx context.Context, wordID int64) ([]*WordRelation, error) {
	var rels []*WordRelation
	err := s.db.NewSelect().
		Model(&rels).
		Where("wr.source_word_id = ?", wordID).
		Order("wr.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rels, nil
}

func (s *Store) ListByTarget(ctx context.Context, wordID int64) ([]*WordRelation, error) {
	var rels []*WordRelation
	err := s.db.NewSelect().
		Model(&rels).
		Where("wr.target_word_id = ?", wordID).
		Order("wr.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rels, nil
}

func (s *Store) Create(ctx context.Context, rel *WordRelation) (*WordRelation, error) {
	_, err := s.db.NewInsert().Model(rel).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *Store) Update(ctx context.Context, rel *WordRelation) (*WordRelation, error) {
	res, err := s.db.NewUpdate().
		Model(rel).
		Column("strength", "relation_type", "description").
		Set("updated_at = now()").
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return rel, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.NewDelete().
		Model((*WordRelation)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
