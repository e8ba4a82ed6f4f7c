package words

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Store handles database operations for words
type Store struct {
	db bun.IDB
}

// NewStore creates a new words store
func NewStore(db bun.IDB) *Store {
	return &Store{db: db}
}

// List returns words ordered by normalized text, with offset/limit pagination.
func (s *Store) List(ctx context.Context, offset, limit int) ([]*Word, error) {
	var ws []*Word
	err := s.db.NewSelect().
		Model(&ws).
		Order("normalized_text ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// GetByID returns a word by ID, or nil when it does not exist.
func (s *Store) GetByID(ctx context.Context, id int64) (*Word, error) {
	word := new(Word)
	err := s.db.NewSelect().
		Model(word).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return word, nil
}

// GetByNormalizedText returns a word by its normalized form, or nil.
func (s *Store) GetByNormalizedText(ctx context.Context, normalized string) (*Word, error) {
	word := new(Word)
	err := s.db.NewSelect().
		Model(word).
		Where("normalized_text = ?", normalized).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return word, nil
}

// Exists reports whether a word with the given ID exists.
func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	return s.db.NewSelect().
		Model((*Word)(nil)).
		Where("id = ?", id).
		Exists(ctx)
}

// Create inserts a new word and returns it with generated fields populated.
func (s *Store) Create(ctx context.Context, word *Word) (*Word, error) {
	_, err := s.db.NewInsert().
		Model(word).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return word, nil
}

// Update updates a word's text fields by ID. Returns nil when no row matched.
func (s *Store) Update(ctx context.Context, id int64, text, normalized string) (*Word, error) {
	word := new(Word)
	res, err := s.db.NewUpdate().
		Model(word).
		Set("text = ?", text).
		Set("normalized_text = ?", normalized).
		Set("updated_at = now()").
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}

	return word, nil
}

// Delete deletes a word by ID, returns true if deleted. Relations referencing
// the word are removed by the ON DELETE CASCADE constraint.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.NewDelete().
		Model((*Word)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
