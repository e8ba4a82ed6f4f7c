package relations

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/lexigraph/pkg/apperror"
)

type fakeWordChecker struct {
	existing map[int64]bool
}

func (f *fakeWordChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

func floatPtr(v float64) *float64 { return &v }

func TestServiceCreateValidation(t *testing.T) {
	checker := &fakeWordChecker{existing: map[int64]bool{1: true, 2: true}}
	svc := NewService(nil, checker)

	tests := []struct {
		name       string
		req        *CreateRelationRequest
		wantStatus int
	}{
		{
			name:       "missing endpoints",
			req:        &CreateRelationRequest{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "self relation",
			req:        &CreateRelationRequest{SourceWordID: 1, TargetWordID: 1},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "strength above one",
			req:        &CreateRelationRequest{SourceWordID: 1, TargetWordID: 2, Strength: floatPtr(1.5)},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative strength",
			req:        &CreateRelationRequest{SourceWordID: 1, TargetWordID: 2, Strength: floatPtr(-0.1)},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown source word",
			req:        &CreateRelationRequest{SourceWordID: 99, TargetWordID: 2},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown target word",
			req:        &CreateRelationRequest{SourceWordID: 1, TargetWordID: 99},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
		})
	}
}

func TestServiceListForWordDirection(t *testing.T) {
	checker := &fakeWordChecker{existing: map[int64]bool{1: true}}
	svc := NewService(nil, checker)

	_, err := svc.ListForWord(context.Background(), 1, "sideways")
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)

	_, err = svc.ListForWord(context.Background(), 42, "outgoing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
