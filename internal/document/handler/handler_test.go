package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/internal/document/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterDocumentRoutes(g, service.NewMemoryService())
	return g
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	g.ServeHTTP(w, req)
	return w
}

func TestDocumentHandler_SaveGetList(t *testing.T) {
	g := newEngine()

	// create
	w := do(g, http.MethodPost, "/api/documents", `{"title":"Java Tutorial","content":"Java was released in May 1995.","author":{"id":"author1","name":"Author Name"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.Created)

	// get
	w = do(g, http.MethodGet, "/api/documents/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Java Tutorial", *got.Title)
	assert.Equal(t, "author1", got.Author.ID)

	// update via PUT keeps created, replaces fields
	w = do(g, http.MethodPut, "/api/documents/"+created.ID, `{"title":"JS Tutorial","created":"2001-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.Created.Equal(*updated.Created))
	assert.Equal(t, "JS Tutorial", *updated.Title)
	assert.Nil(t, updated.Content)

	// list
	w = do(g, http.MethodGet, "/api/documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestDocumentHandler_NotFoundAndBadRequest(t *testing.T) {
	g := newEngine()

	w := do(g, http.MethodGet, "/api/documents/nonexistent-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(g, http.MethodPost, "/api/documents", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(g, http.MethodPost, "/api/documents", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a null document is rejected, not stored as an empty record
	w = do(g, http.MethodPost, "/api/documents", "null")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid argument")

	w = do(g, http.MethodPut, "/api/documents/doc-1", "null")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(g, http.MethodGet, "/api/documents", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(g, http.MethodPost, "/api/documents/search", `{"titlePrefixes":"J"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Search(t *testing.T) {
	g := newEngine()
	for _, body := range []string{
		`{"title":"Java Tutorial","content":"Java was released in May 1995.","author":{"id":"author1","name":"Author First"}}`,
		`{"title":"JS Tutorial","content":"JS was released in 1993.","author":{"id":"author1","name":"Author Second"}}`,
		`{"title":"Python Tutorial","content":"Python was released in 1991.","author":{"id":"author3","name":"Author Third"}}`,
	} {
		require.Equal(t, http.StatusOK, do(g, http.MethodPost, "/api/documents", body).Code)
	}

	search := func(body string) []string {
		w := do(g, http.MethodPost, "/api/documents/search", body)
		require.Equal(t, http.StatusOK, w.Code)
		var resp SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, len(resp.Documents), resp.Count)
		out := []string{}
		for _, d := range resp.Documents {
			out = append(out, d.TitleOrEmpty())
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Java Tutorial", "Python Tutorial"},
		search(`{"titlePrefixes":["P","J"],"containsContents":["Java","Python"]}`))
	assert.ElementsMatch(t, []string{"Java Tutorial", "JS Tutorial"}, search(`{"authorIds":["author1"]}`))
	assert.Len(t, search(""), 3)
	assert.Len(t, search(`{}`), 3)
	assert.Empty(t, search(`{"createdTo":"2000-01-01T00:00:00Z"}`))
}
