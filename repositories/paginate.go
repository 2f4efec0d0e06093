package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-api/pagination"
)

// aggregator is the part of *mongo.Collection used by Paginate.
type aggregator interface {
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

type facetCount struct {
	Count int64 `bson:"count"`
}

type facetResult[T any] struct {
	Results []T          `bson:"results"`
	Total   []facetCount `bson:"total"`
}

// pagePipeline matches, sorts, then splits the sorted set into the requested slice and its
// total count. Both facets read the same $match output, so totalResults always counts the
// filtered set.
func pagePipeline(filter bson.M, sort bson.D, p pagination.Params) mongo.Pipeline {
	if filter == nil {
		filter = bson.M{}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	return append(pipeline, bson.D{{Key: "$facet", Value: bson.D{
		{Key: "results", Value: bson.A{
			bson.D{{Key: "$skip", Value: p.Skip()}},
			bson.D{{Key: "$limit", Value: int64(p.Limit)}},
		}},
		{Key: "total", Value: bson.A{
			bson.D{{Key: "$count", Value: "count"}},
		}},
	}}})
}

// Paginate runs filter+sort against col and returns one page with the filtered total,
// in a single round-trip.
func Paginate[T any](ctx context.Context, col aggregator, filter bson.M, sort bson.D, p pagination.Params) (pagination.Page[T], error) {
	if err := p.Validate(); err != nil {
		return pagination.Page[T]{}, err
	}

	cur, err := col.Aggregate(ctx, pagePipeline(filter, sort, p))
	if err != nil {
		return pagination.Page[T]{}, fmt.Errorf("aggregate page: %w", err)
	}
	defer cur.Close(ctx)

	var out facetResult[T]
	if cur.Next(ctx) {
		if err := cur.Decode(&out); err != nil {
			return pagination.Page[T]{}, fmt.Errorf("decode page: %w", err)
		}
	}
	if err := cur.Err(); err != nil {
		return pagination.Page[T]{}, fmt.Errorf("read page: %w", err)
	}

	var total int64
	if len(out.Total) > 0 {
		total = out.Total[0].Count
	}
	return pagination.NewPage(out.Results, p, total), nil
}
