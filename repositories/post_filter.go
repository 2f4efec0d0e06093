package repositories

import (
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidSortField = errors.New("sortBy must be one of createdAt, updatedAt, title")
	ErrInvalidSortOrder = errors.New("sortOrder must be asc or desc")
)

// PostFilter is the predicate shared by the list, search and tag-filter endpoints.
// Zero value matches every post.
type PostFilter struct {
	// Keyword is matched as a case-insensitive literal substring of title or description.
	Keyword string
	// TagID restricts the result to posts referencing this tag.
	TagID *primitive.ObjectID
}

// BSON builds the Mongo filter document.
func (f PostFilter) BSON() bson.M {
	conds := make([]bson.M, 0, 2)

	if strings.TrimSpace(f.Keyword) != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Keyword), Options: "i"}
		conds = append(conds, bson.M{"$or": []bson.M{
			{"title": re},
			{"description": re},
		}})
	}
	if f.TagID != nil {
		conds = append(conds, bson.M{"tags": *f.TagID})
	}

	switch len(conds) {
	case 0:
		return bson.M{}
	case 1:
		return conds[0]
	default:
		return bson.M{"$and": conds}
	}
}

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTitle     SortField = "title"
)

// sortColumns maps the public sort names to document keys. Anything not listed is rejected.
var sortColumns = map[SortField]string{
	SortByCreatedAt: "created_at",
	SortByUpdatedAt: "updated_at",
	SortByTitle:     "title",
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort is newest first.
var DefaultSort = Sort{Field: SortByCreatedAt, Order: SortDesc}

// ParseSort validates raw sortBy/sortOrder values. Empty values fall back to DefaultSort.
func ParseSort(field, order string) (Sort, error) {
	s := DefaultSort

	if f := strings.TrimSpace(field); f != "" {
		sf := SortField(f)
		if _, ok := sortColumns[sf]; !ok {
			return Sort{}, ErrInvalidSortField
		}
		s.Field = sf
	}

	if o := strings.ToLower(strings.TrimSpace(order)); o != "" {
		switch o {
		case "asc", "ascending", "1":
			s.Order = SortAsc
		case "desc", "descending", "-1":
			s.Order = SortDesc
		default:
			return Sort{}, ErrInvalidSortOrder
		}
	}
	return s, nil
}

// BSON returns the sort document. Ties fall back to _id ascending (insertion order)
// so that page boundaries are stable.
func (s Sort) BSON() bson.D {
	col, ok := sortColumns[s.Field]
	if !ok {
		col = sortColumns[DefaultSort.Field]
	}
	dir := -1
	if s.Order == SortAsc {
		dir = 1
	}
	return bson.D{
		{Key: col, Value: dir},
		{Key: "_id", Value: 1},
	}
}
