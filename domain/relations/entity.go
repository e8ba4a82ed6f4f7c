package relations

import (
	"time"

	"github.com/uptrace/bun"
)

// WordRelation represents a directed, weighted semantic link between two
// words (synonym, antonym, derivation, ...). Strength is a [0,1] confidence
// scalar; traversal multiplies it along each hop.
type WordRelation struct {
	bun.BaseModel `bun:"table:word_relations,alias:wr"`

	ID           int64     `bun:"id,pk,autoincrement"`
	SourceWordID int64     `bun:"source_word_id,notnull"`
	TargetWordID int64     `bun:"target_word_id,notnull"`
	Strength     float64   `bun:"strength,notnull,default:1.0"`
	RelationType *string   `bun:"relation_type"`
	Description  *string   `bun:"description"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:now()"`
}
