package words

import (
	"time"
)

// CreateWordRequest is the request DTO for creating a word
type CreateWordRequest struct {
	Text string `json:"text"`
}

// UpdateWordRequest is the request DTO for updating a word
type UpdateWordRequest struct {
	Text *string `json:"text"`
}

// WordResponse is the response DTO for a word
type WordResponse struct {
	ID             int64  `json:"id"`
	Text           string `json:"text"`
	NormalizedText string `json:"normalized_text"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ToResponse converts a Word entity to a WordResponse
func ToResponse(w *Word) *WordResponse {
	return &WordResponse{
		ID:             w.ID,
		Text:           w.Text,
		NormalizedText: w.NormalizedText,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ToResponseList converts a slice of Word entities to WordResponses
func ToResponseList(ws []*Word) []*WordResponse {
	result := make([]*WordResponse, len(ws))
	for i, w := range ws {
		result[i] = ToResponse(w)
	}
	return result
}
