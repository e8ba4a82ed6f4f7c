package words

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigraph/lexigraph/pkg/apperror"
)

// fakeStore is an in-memory wordStore keyed by id and normalized text.
type fakeStore struct {
	byID   map[int64]*Word
	nextID int64
}

func newFakeStore(existing ...string) *fakeStore {
	f := &fakeStore{byID: make(map[int64]*Word)}
	for _, text := range existing {
		f.nextID++
		f.byID[f.nextID] = &Word{
			ID:             f.nextID,
			Text:           text,
			NormalizedText: Normalize(text),
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
	}
	return f
}

func (f *fakeStore) List(_ context.Context, offset, limit int) ([]*Word, error) {
	var ws []*Word
	for _, w := range f.byID {
		ws = append(ws, w)
	}
	return ws, nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*Word, error) {
	return f.byID[id], nil
}

func (f *fakeStore) GetByNormalizedText(_ context.Context, normalized string) (*Word, error) {
	for _, w := range f.byID {
		if w.NormalizedText == normalized {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Create(_ context.Context, word *Word) (*Word, error) {
	f.nextID++
	word.ID = f.nextID
	word.CreatedAt = time.Now()
	word.UpdatedAt = time.Now()
	f.byID[word.ID] = word
	return word, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, text, normalized string) (*Word, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	w.Text = text
	w.NormalizedText = normalized
	w.UpdatedAt = time.Now()
	return w, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func strPtr(s string) *string { return &s }

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.HTTPStatus)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"HELLO", "hello"},
		{"  Hello  ", "hello"},
		{"\tMixedCase\n", "mixedcase"},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	// Text validation fails before any store access.
	svc := NewService(nil)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), &CreateWordRequest{Text: text})
		requireStatus(t, err, http.StatusBadRequest)
	}
}

func TestServiceCreateDuplicate(t *testing.T) {
	svc := NewService(newFakeStore("hello"))

	// Dedup is on the normalized form, so casing and padding don't help.
	_, err := svc.Create(context.Background(), &CreateWordRequest{Text: "  HELLO  "})
	requireStatus(t, err, http.StatusConflict)
}

func TestServiceCreate(t *testing.T) {
	svc := NewService(newFakeStore())

	word, err := svc.Create(context.Background(), &CreateWordRequest{Text: "  Éclair  "})
	require.NoError(t, err)
	assert.Equal(t, "Éclair", word.Text)
	assert.Equal(t, "éclair", word.NormalizedText)
	assert.NotZero(t, word.ID)
}

func TestServiceUpdateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing word", func(t *testing.T) {
		svc := NewService(newFakeStore())
		_, err := svc.Update(ctx, 42, &UpdateWordRequest{Text: strPtr("new")})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("nil text", func(t *testing.T) {
		svc := NewService(newFakeStore("hello"))
		_, err := svc.Update(ctx, 1, &UpdateWordRequest{})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("whitespace text", func(t *testing.T) {
		svc := NewService(newFakeStore("hello"))
		_, err := svc.Update(ctx, 1, &UpdateWordRequest{Text: strPtr("   ")})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("rename collision", func(t *testing.T) {
		svc := NewService(newFakeStore("hello", "world"))
		_, err := svc.Update(ctx, 1, &UpdateWordRequest{Text: strPtr("World")})
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("case-only rename allowed", func(t *testing.T) {
		svc := NewService(newFakeStore("hello"))
		word, err := svc.Update(ctx, 1, &UpdateWordRequest{Text: strPtr("HELLO")})
		require.NoError(t, err)
		assert.Equal(t, "HELLO", word.Text)
		assert.Equal(t, "hello", word.NormalizedText)
	})
}

func TestServiceGetByText(t *testing.T) {
	svc := NewService(newFakeStore("hello"))

	_, err := svc.GetByText(context.Background(), "   ")
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.GetByText(context.Background(), "missing")
	requireStatus(t, err, http.StatusNotFound)

	word, err := svc.GetByText(context.Background(), " HELLO ")
	require.NoError(t, err)
	assert.Equal(t, "hello", word.NormalizedText)
}

func TestServiceGetByIDMissing(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.GetByID(context.Background(), 42)
	requireStatus(t, err, http.StatusNotFound)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceDeleteMissing(t *testing.T) {
	svc := NewService(newFakeStore())

	err := svc.Delete(context.Background(), 42)
	requireStatus(t, err, http.StatusNotFound)
}
