package document

import "strings"

// Matches reports whether d satisfies every present criterion of r.
// Criteria are combined with AND; values inside one criterion with OR.
// A nil request matches everything.
func (r *SearchRequest) Matches(d *Document) bool {
	if r == nil {
		return true
	}
	if len(r.TitlePrefixes) > 0 {
		if d.Title == nil || !anyOf(r.TitlePrefixes, func(p string) bool { return strings.HasPrefix(*d.Title, p) }) {
			return false
		}
	}
	if len(r.ContainsContents) > 0 {
		if d.Content == nil || !anyOf(r.ContainsContents, func(s string) bool { return strings.Contains(*d.Content, s) }) {
			return false
		}
	}
	if len(r.AuthorIDs) > 0 {
		if d.Author == nil || !anyOf(r.AuthorIDs, func(id string) bool { return id == d.Author.ID }) {
			return false
		}
	}
	// stored documents always carry Created; guard anyway for ad-hoc callers
	if r.CreatedFrom != nil && (d.Created == nil || d.Created.Before(*r.CreatedFrom)) {
		return false
	}
	if r.CreatedTo != nil && (d.Created == nil || d.Created.After(*r.CreatedTo)) {
		return false
	}
	return true
}

// IsEmpty reports whether r applies no criteria at all.
func (r *SearchRequest) IsEmpty() bool {
	return r == nil ||
		(len(r.TitlePrefixes) == 0 && len(r.ContainsContents) == 0 && len(r.AuthorIDs) == 0 &&
			r.CreatedFrom == nil && r.CreatedTo == nil)
}

func anyOf(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if pred(v) {
			return true
		}
	}
	return false
}
