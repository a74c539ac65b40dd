package service

import (
	"errors"

	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/internal/document/repository"
	"github.com/docstore/docstore/pkg/metrics"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = repository.ErrInvalidArgument
)

// Service defines the document operations used by the handler layer and the CLI.
type Service interface {
	Save(d *document.Document) (*document.Document, error)
	FindByID(id string) (*document.Document, error)
	Search(req *document.SearchRequest) ([]*document.Document, error)
	Count() int
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...repository.Option) Service {
	return &memoryService{repo: repository.NewMemoryRepo(opts...)}
}

type memoryService struct {
	repo *repository.MemoryRepo
}

func (m *memoryService) Save(d *document.Document) (*document.Document, error) {
	metrics.StoreOperations.WithLabelValues("save").Inc()
	saved, err := m.repo.Save(d)
	if err != nil {
		return nil, err
	}
	metrics.StoredDocuments.Set(float64(m.repo.Len()))
	return saved, nil
}

func (m *memoryService) FindByID(id string) (*document.Document, error) {
	metrics.StoreOperations.WithLabelValues("find").Inc()
	d, ok := m.repo.FindByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *memoryService) Search(req *document.SearchRequest) ([]*document.Document, error) {
	metrics.StoreOperations.WithLabelValues("search").Inc()
	out := m.repo.Search(req)
	metrics.SearchResults.Observe(float64(len(out)))
	return out, nil
}

func (m *memoryService) Count() int {
	return m.repo.Len()
}
