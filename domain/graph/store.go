package graph

import (
	"context"

	"github.com/uptrace/bun"
)

// Direction of an adjacency edge relative to the word it was queried from.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// Edge is one adjacency entry: the relation row seen from one of its
// endpoints. NeighborID is the other endpoint.
type Edge struct {
	RelationID int64
	SourceID   int64
	TargetID   int64
	NeighborID int64
	Direction  Direction
	Strength   float64
}

// Store is the read surface the traversal engine runs against. Traversal is
// undirected: Adjacency returns relations where the word is either endpoint,
// sorted by relation id ascending so expansion order (and therefore path and
// subgraph enumeration order) is deterministic.
type Store interface {
	WordExists(ctx context.Context, id int64) (bool, error)
	Adjacency(ctx context.Context, wordID int64) ([]Edge, error)
}

type bunStore struct {
	db bun.IDB
}

// NewStore creates a Postgres-backed traversal store.
func NewStore(db bun.IDB) Store {
	return &bunStore{db: db}
}

func (s *bunStore) WordExists(ctx context.Context, id int64) (bool, error) {
	return s.db.NewSelect().
		Table("words").
		Where("id = ?", id).
		Exists(ctx)
}

type relationRow struct {
	ID           int64   `bun:"id"`
	SourceWordID int64   `bun:"source_word_id"`
	TargetWordID int64   `bun:"target_word_id"`
	Strength     float64 `bun:"strength"`
}

func (s *bunStore) Adjacency(ctx context.Context, wordID int64) ([]Edge, error) {
	var rows []relationRow
	err := s.db.NewSelect().
		Table("word_relations").
		Column("id", "source_word_id", "target_word_id", "strength").
		Where("source_word_id = ? OR target_word_id = ?", wordID, wordID).
		OrderExpr("id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, len(rows))
	for _, r := range rows {
		e := Edge{
			RelationID: r.ID,
			SourceID:   r.SourceWordID,
			TargetID:   r.TargetWordID,
			Strength:   r.Strength,
		}
		if r.SourceWordID == wordID {
			e.NeighborID = r.TargetWordID
			e.Direction = DirectionOutgoing
		} else {
			e.NeighborID = r.SourceWordID
			e.Direction = DirectionIncoming
		}
		edges = append(edges, e)
	}
	return edges, nil
}
