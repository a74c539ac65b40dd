package document

import "time"

// Document is the unit stored by the document store. Title, Content, Author
// and Created are optional; nil means the value is absent.
type Document struct {
	ID      string     `json:"id,omitempty" yaml:"id,omitempty"`
	Title   *string    `json:"title,omitempty" yaml:"title,omitempty"`
	Content *string    `json:"content,omitempty" yaml:"content,omitempty"`
	Author  *Author    `json:"author,omitempty" yaml:"author,omitempty"`
	Created *time.Time `json:"created,omitempty" yaml:"created,omitempty"`
}

// Author is embedded in a Document. It is not stored or validated on its own.
type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SearchRequest holds independent filter criteria. Nil or empty criteria are
// not applied.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}

// String returns a pointer to s, for optional Document fields.
func String(s string) *string { return &s }

// Time returns a pointer to t.
func Time(t time.Time) *time.Time { return &t }

// Clone returns a deep copy of d. A nil document clones to nil.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{ID: d.ID}
	if d.Title != nil {
		out.Title = String(*d.Title)
	}
	if d.Content != nil {
		out.Content = String(*d.Content)
	}
	if d.Author != nil {
		a := *d.Author
		out.Author = &a
	}
	if d.Created != nil {
		out.Created = Time(*d.Created)
	}
	return out
}

// TitleOrEmpty returns the title, or "" when absent.
func (d *Document) TitleOrEmpty() string {
	if d.Title == nil {
		return ""
	}
	return *d.Title
}
