package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/internal/document/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `documents:
  - id: java
    title: Java Tutorial
    content: Java was released in May 1995.
    author:
      id: author1
      name: Author First
    created: 2024-01-01T10:00:00Z
  - title: Python Tutorial
    content: Python was released in 1991.
  - id: java
    title: Java Tutorial, 2nd edition
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Documents, 3)

	d := f.Documents[0]
	assert.Equal(t, "java", d.ID)
	assert.Equal(t, "Java Tutorial", *d.Title)
	assert.Equal(t, "author1", d.Author.ID)
	require.NotNil(t, d.Created)
	assert.True(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Equal(*d.Created))

	assert.Empty(t, f.Documents[1].ID)
	assert.Nil(t, f.Documents[1].Author)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("documents: [unterminated"))
	assert.Error(t, err)
}

func TestLoadInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	svc := service.NewMemoryService()
	n, err := LoadInto(svc, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// the repeated id is an update: two documents, created pinned to the first
	assert.Equal(t, 2, svc.Count())
	got, err := svc.FindByID("java")
	require.NoError(t, err)
	assert.Equal(t, "Java Tutorial, 2nd edition", *got.Title)
	assert.Nil(t, got.Content)
	assert.True(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Equal(*got.Created))

	results, err := svc.Search(&document.SearchRequest{TitlePrefixes: []string{"Python"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].ID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadInto(service.NewMemoryService(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
