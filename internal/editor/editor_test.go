package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pankajredekar/prodcat/internal/config"
	"github.com/pankajredekar/prodcat/internal/errs"
	"github.com/pankajredekar/prodcat/internal/product"
	"github.com/pankajredekar/prodcat/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	calls  int
	last   product.Product
	result store.Result
	err    error
}

func (w *recordingWriter) Insert(p product.Product) (store.Result, error) {
	w.calls++
	w.last = p
	return w.result, w.err
}

func (w *recordingWriter) Update(p product.Product) (store.Result, error) {
	w.calls++
	w.last = p
	return w.result, w.err
}

func (w *recordingWriter) Delete(code string) (store.Result, error) {
	w.calls++
	w.last = product.Product{Code: code}
	return w.result, w.err
}

func TestInsertRequiresAllFields(t *testing.T) {
	tests := []struct {
		code, name, format string
		field              string
	}{
		{"", "Carton", "1x1", "code"},
		{"A1", "  ", "1x1", "name"},
		{"A1", "Carton", "", "format"},
	}
	for _, tt := range tests {
		w := &recordingWriter{}
		_, err := New(w, zerolog.Nop()).Insert(tt.code, tt.name, tt.format)

		var ve *errs.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, tt.field, ve.Field)
		assert.Zero(t, w.calls)
	}
}

func TestInsertTrimsInput(t *testing.T) {
	w := &recordingWriter{}
	res, err := New(w, zerolog.Nop()).Insert(" A1 ", " Carton ", " 472X10 ")
	require.NoError(t, err)
	assert.Equal(t, store.Ok, res)
	assert.Equal(t, product.Product{Code: "A1", Name: "Carton", Format: "472X10"}, w.last)
}

func TestUpdateRequiresCodeOnly(t *testing.T) {
	w := &recordingWriter{}
	e := New(w, zerolog.Nop())

	_, err := e.Update(" ", "Carton", "1x1")
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, w.calls)

	_, err = e.Update("A1", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, w.calls)
}

func TestDeleteRequiresCode(t *testing.T) {
	w := &recordingWriter{}
	_, err := New(w, zerolog.Nop()).Delete("")
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, w.calls)
}

func TestWriterErrorPropagates(t *testing.T) {
	boom := errors.New("disk full")
	w := &recordingWriter{err: boom}
	_, err := New(w, zerolog.Nop()).Delete("A1")
	assert.ErrorIs(t, err, boom)
}

func setupEditor(t *testing.T) (*Editor, *store.Store) {
	t.Helper()
	cfg := &config.Config{DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "products.db")}
	s := store.New(cfg, zerolog.Nop())
	require.NoError(t, s.Init())
	return New(s, zerolog.Nop()), s
}

func TestEditorAgainstStore(t *testing.T) {
	e, s := setupEditor(t)

	res, err := e.Insert("A1", "Carton", "472X1166X122")
	require.NoError(t, err)
	assert.Equal(t, store.Ok, res)

	res, err = e.Insert("A1", "Other", "1x1")
	require.NoError(t, err)
	assert.Equal(t, store.AlreadyExists, res)

	p, err := s.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, "Carton", p.Name)

	res, err = e.Update("A1", "Carton renforcé", "472X1166X150")
	require.NoError(t, err)
	assert.Equal(t, store.Ok, res)

	res, err = e.Update("B2", "Ghost", "1x1")
	require.NoError(t, err)
	assert.Equal(t, store.NotFound, res)

	res, err = e.Delete("B2")
	require.NoError(t, err)
	assert.Equal(t, store.NotFound, res)

	res, err = e.Delete("A1")
	require.NoError(t, err)
	assert.Equal(t, store.Ok, res)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
