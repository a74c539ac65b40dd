package service

import (
	"errors"
	"testing"

	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryService_SaveFindSearch(t *testing.T) {
	svc := NewMemoryService()
	saves := testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("save"))

	saved, err := svc.Save(&document.Document{Title: document.String("a.tex")})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, saves+1, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("save")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoredDocuments))

	got, err := svc.FindByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.tex", *got.Title)

	list, err := svc.Search(nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, svc.Count())
}

func TestMemoryService_Errors(t *testing.T) {
	svc := NewMemoryService()

	_, err := svc.FindByID("missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.Save(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 0, svc.Count())
}
