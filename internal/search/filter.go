// Package search translates loosely-typed query parameters from the
// advanced book search endpoint into a structured MongoDB filter.
package search

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter is the typed representation of an advanced search. Every
// dimension is optional; a nil (or empty) field contributes nothing to
// the resulting query.
type Filter struct {
	Title    *string
	MinPrice *float64
	MaxPrice *float64
	MinPages *int
	MaxPages *int
	Genres   []string
	FromDate *time.Time
}

// Query builds the MongoDB filter document. Each present dimension
// becomes one sub-condition; multiple sub-conditions are combined with
// $and, a single one stands alone, and an empty filter matches every
// document. Genres use $in, so a book matches when its genre is any of
// the supplied values.
func (f Filter) Query() bson.M {
	conditions := make([]bson.M, 0, 5)

	if f.Title != nil {
		conditions = append(conditions, bson.M{"title": bson.M{
			"$regex":   regexp.QuoteMeta(*f.Title),
			"$options": "i",
		}})
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		conditions = append(conditions, bson.M{"price": price})
	}

	pages := bson.M{}
	if f.MinPages != nil {
		pages["$gte"] = *f.MinPages
	}
	if f.MaxPages != nil {
		pages["$lte"] = *f.MaxPages
	}
	if len(pages) > 0 {
		conditions = append(conditions, bson.M{"pageCount": pages})
	}

	if len(f.Genres) > 0 {
		conditions = append(conditions, bson.M{"genre": bson.M{"$in": f.Genres}})
	}

	if f.FromDate != nil {
		conditions = append(conditions, bson.M{"publicationDate": bson.M{"$gte": *f.FromDate}})
	}

	switch len(conditions) {
	case 0:
		return bson.M{}
	case 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}
