package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/internal/ids"
	"github.com/docstore/docstore/pkg/logger"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// MemoryRepo is the in-memory document store. All access to the map goes
// through mu; Save holds the write lock across lookup and insert so the
// first Created value for an id is never lost.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
	newID ids.Generator
	now   func() time.Time // injectable for deterministic tests
}

// Option configures a MemoryRepo.
type Option func(*MemoryRepo)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g ids.Generator) Option {
	return func(m *MemoryRepo) { m.newID = g }
}

// WithClock replaces time.Now for Created assignment.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryRepo) { m.now = now }
}

func NewMemoryRepo(opts ...Option) *MemoryRepo {
	m := &MemoryRepo{
		store: make(map[string]*document.Document),
		newID: ids.NewUUID,
		now:   time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Save upserts doc. A missing ID is generated; an existing document's
// Created is kept; an unset Created becomes now. The stored value fully
// replaces any previous one. doc itself receives the resolved ID and Created.
func (m *MemoryRepo) Save(doc *document.Document) (*document.Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("save document: %w: nil document", ErrInvalidArgument)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc.ID == "" {
		doc.ID = m.newID()
	} else if existing, ok := m.store[doc.ID]; ok {
		doc.Created = document.Time(*existing.Created)
	}
	if doc.Created == nil {
		doc.Created = document.Time(m.now().UTC())
	}

	stored := doc.Clone()
	m.store[doc.ID] = stored
	logger.WithFields(logger.Fields{"document_id": stored.ID, "created": stored.Created.Format(time.RFC3339Nano)}).Debug("document saved")
	return stored.Clone(), nil
}

// FindByID returns a copy of the document stored under id.
func (m *MemoryRepo) FindByID(id string) (*document.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Search returns copies of every document matching req, in map order.
// A nil req returns everything.
func (m *MemoryRepo) Search(req *document.SearchRequest) []*document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		if req.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	logger.WithFields(logger.Fields{"matched": len(out), "total": len(m.store)}).Debug("documents searched")
	return out
}

// Len returns the number of stored documents.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
