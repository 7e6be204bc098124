// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/businesstalk/backend/models"
)

// DefaultLimit caps list responses when the caller does not supply one.
const DefaultLimit = 50

// podcastSearchFields are the text fields a search term is matched
// against: pure case-insensitive substring OR-match, no tokenization.
// The single-guest mirror fields are included so documents written
// before the guests list existed stay searchable until rewritten.
var podcastSearchFields = []string{
	"title",
	"description",
	"guests.name",
	"guests.title",
	"guests.institution",
	"guestName",
	"guestTitle",
	"guestInstitution",
}

var blogSearchFields = []string{
	"title",
	"excerpt",
	"content",
}

// ListQuery carries the filter parameters of a podcast list request.
type ListQuery struct {
	Category      string
	Search        string
	Page          int
	Limit         int
	IncludeImages bool
}

// Normalized returns the query with pagination defaults applied:
// 1-based page, DefaultLimit when limit is unset or nonsense.
func (q ListQuery) Normalized() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Skip converts the 1-based page into an offset.
func (q ListQuery) Skip() int {
	n := q.Normalized()
	return (n.Page - 1) * n.Limit
}

// Filter builds the Mongo filter. A category other than the two literal
// values is deliberately ignored rather than rejected.
func (q ListQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Category == models.CategoryUpcoming || q.Category == models.CategoryPast {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		filter["$or"] = searchClauses(podcastSearchFields, q.Search)
	}
	return filter
}

// FindOptions builds skip/limit/sort and the image projection. Inline
// image bytes are excluded from list results unless the caller opted in.
func (q ListQuery) FindOptions() *options.FindOptions {
	n := q.Normalized()
	opts := options.Find().
		SetSkip(int64(n.Skip())).
		SetLimit(int64(n.Limit)).
		SetSort(bson.D{{Key: "scheduledDate", Value: -1}, {Key: "_id", Value: -1}})
	if !q.IncludeImages {
		opts.SetProjection(bson.M{
			"thumbnailImage": 0,
			"guestImage":     0,
			"guests.image":   0,
		})
	}
	return opts
}

// BlogQuery carries the filter parameters of a blog list request.
// PublishedOnly is forced on the public routes; admin routes leave it off.
type BlogQuery struct {
	Category      string
	Search        string
	Page          int
	Limit         int
	PublishedOnly bool
}

func (q BlogQuery) Normalized() BlogQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

func (q BlogQuery) Skip() int {
	n := q.Normalized()
	return (n.Page - 1) * n.Limit
}

func (q BlogQuery) Filter() bson.M {
	filter := bson.M{}
	if q.PublishedOnly {
		filter["isPublished"] = true
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Search != "" {
		filter["$or"] = searchClauses(blogSearchFields, q.Search)
	}
	return filter
}

func (q BlogQuery) FindOptions() *options.FindOptions {
	n := q.Normalized()
	return options.Find().
		SetSkip(int64(n.Skip())).
		SetLimit(int64(n.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
}

func searchClauses(fields []string, term string) bson.A {
	pattern := regexp.QuoteMeta(term)
	clauses := make(bson.A, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, bson.M{f: primitive.Regex{Pattern: pattern, Options: "i"}})
	}
	return clauses
}
