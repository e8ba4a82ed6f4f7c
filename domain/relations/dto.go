package relations

import (
	"time"
)

// CreateRelationRequest is the request DTO for creating a relation
type CreateRelationRequest struct {
	SourceWordID int64    `json:"source_word_id"`
	TargetWordID int64    `json:"target_word_id"`
	Strength     *float64 `json:"strength"`
	RelationType *string  `json:"relation_type"`
	Description  *string  `json:"description"`
}

// UpdateRelationRequest is the request DTO for updating a relation.
// Endpoints are immutable; delete and recreate to rewire a relation.
type UpdateRelationRequest struct {
	Strength     *float64 `json:"strength"`
	RelationType *string  `json:"relation_type"`
	Description  *string  `json:"description"`
}

// RelationResponse is the response DTO for a relation
type RelationResponse struct {
	ID           int64   `json:"id"`
	SourceWordID int64   `json:"source_word_id"`
	TargetWordID int64   `json:"target_word_id"`
	Strength     float64 `json:"strength"`
	RelationType *string `json:"relation_type,omitempty"`
	Description  *string `json:"description,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToResponse converts a WordRelation entity to a RelationResponse
func ToResponse(r *WordRelation) *RelationResponse {
	return &RelationResponse{
		ID:           r.ID,
		SourceWordID: r.SourceWordID,
		TargetWordID: r.TargetWordID,
		Strength:     r.Strength,
		RelationType: r.RelationType,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ToResponseList converts a slice of WordRelation entities to RelationResponses
func ToResponseList(rs []*WordRelation) []*RelationResponse {
	result := make([]*RelationResponse, len(rs))
	for i, r := range rs {
		result[i] = ToResponse(r)
	}
	return result
}
