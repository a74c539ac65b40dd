package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/internal/document/service"
	"github.com/docstore/docstore/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SearchResponse wraps search results with their count.
type SearchResponse struct {
	Documents []*document.Document `json:"documents"`
	Count     int                  `json:"count"`
}

func RegisterDocumentRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/documents", func(c *gin.Context) {
		list, err := svc.Search(nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/api/documents", func(c *gin.Context) {
		d, err := bindDocument(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		save(c, svc, d)
	})

	r.PUT("/api/documents/:id", func(c *gin.Context) {
		d, err := bindDocument(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if d != nil {
			d.ID = c.Param("id")
		}
		save(c, svc, d)
	})

	r.GET("/api/documents/:id", func(c *gin.Context) {
		d, err := svc.FindByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.POST("/api/documents/search", func(c *gin.Context) {
		// an empty body means no request at all
		var req *document.SearchRequest
		var body document.SearchRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			if !errors.Is(err, io.EOF) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		} else {
			req = &body
		}
		list, err := svc.Search(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, SearchResponse{Documents: list, Count: len(list)})
	})
}

// bindDocument decodes the request body into a document pointer. A JSON null
// body yields a nil document so Save can reject it.
func bindDocument(c *gin.Context) (*document.Document, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	var d *document.Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func save(c *gin.Context, svc service.Service, d *document.Document) {
	saved, err := svc.Save(d)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Errorf("save document: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}
