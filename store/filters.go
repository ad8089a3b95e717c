package store

import (
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPageSize is the number of products returned by a keyword listing.
const DefaultPageSize = 6

// DefaultShowcaseSize is the number of products in top/newest listings.
const DefaultShowcaseSize = 4

// KeywordFilter matches products whose name contains keyword, ignoring case.
// Regex metacharacters in keyword are matched literally.
func KeywordFilter(keyword string) bson.M {
	if keyword == "" {
		return bson.M{}
	}
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}}
}

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64
	Max float64
}

// ProductFilter builds the category/price filter. Either part is skipped when
// absent; with both absent it matches every product.
func ProductFilter(categoryIDs []primitive.ObjectID, price *PriceRange) bson.M {
	filter := bson.M{}
	if len(categoryIDs) > 0 {
		filter["category"] = bson.M{"$in": categoryIDs}
	}
	if price != nil {
		filter["price"] = bson.M{"$gte": price.Min, "$lte": price.Max}
	}
	return filter
}

// PageCount returns ceil(count/pageSize).
func PageCount(count int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(count) / float64(pageSize)))
}

// versionFilter matches a product document at version v. Documents written
// before versioning have no version field and count as version 0.
func versionFilter(id primitive.ObjectID, v int64) bson.M {
	if v == 0 {
		return bson.M{"_id": id, "version": bson.M{"$in": bson.A{0, nil}}}
	}
	return bson.M{"_id": id, "version": v}
}
