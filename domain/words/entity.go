package words

import (
	"time"

	"github.com/uptrace/bun"
)

// Word represents a vocabulary entry in the words table.
// NormalizedText is the lowercase form used for deduplication and lookup;
// Text preserves the display casing.
type Word struct {
	bun.BaseModel `bun:"table:words,alias:w"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Text           string    `bun:"text,notnull"`
	NormalizedText string    `bun:"normalized_text,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:now()"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:now()"`
}
