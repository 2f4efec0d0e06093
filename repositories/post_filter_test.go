package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/pagination"
)

func TestPostFilter_BSON(t *testing.T) {
	tagID := primitive.NewObjectID()

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, PostFilter{}.BSON())
		assert.Equal(t, bson.M{}, PostFilter{Keyword: "   "}.BSON())
	})

	t.Run("keyword is escaped and case-insensitive", func(t *testing.T) {
		got := PostFilter{Keyword: "c++ (intro)"}.BSON()

		re := primitive.Regex{Pattern: `c\+\+ \(intro\)`, Options: "i"}
		assert.Equal(t, bson.M{"$or": []bson.M{
			{"title": re},
			{"description": re},
		}}, got)
	})

	t.Run("tag membership", func(t *testing.T) {
		assert.Equal(t, bson.M{"tags": tagID}, PostFilter{TagID: &tagID}.BSON())
	})

	t.Run("keyword and tag are combined with $and", func(t *testing.T) {
		got := PostFilter{Keyword: "go", TagID: &tagID}.BSON()

		conds, ok := got["$and"].([]bson.M)
		require.True(t, ok)
		require.Len(t, conds, 2)
		assert.Contains(t, conds[0], "$or")
		assert.Equal(t, bson.M{"tags": tagID}, conds[1])
	})
}

func TestParseSort(t *testing.T) {
	testCases := []struct {
		name    string
		field   string
		order   string
		want    Sort
		wantErr error
	}{
		{name: "defaults", want: DefaultSort},
		{name: "title ascending", field: "title", order: "asc", want: Sort{Field: SortByTitle, Order: SortAsc}},
		{name: "updatedAt keeps default order", field: "updatedAt", want: Sort{Field: SortByUpdatedAt, Order: SortDesc}},
		{name: "order is case-insensitive", order: "ASC", want: Sort{Field: SortByCreatedAt, Order: SortAsc}},
		{name: "numeric order", order: "-1", want: Sort{Field: SortByCreatedAt, Order: SortDesc}},
		{name: "unknown field", field: "password", wantErr: ErrInvalidSortField},
		{name: "storage key is not accepted", field: "created_at", wantErr: ErrInvalidSortField},
		{name: "unknown order", order: "sideways", wantErr: ErrInvalidSortOrder},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParseSort(testCase.field, testCase.order)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestSort_BSON(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: 1},
	}, DefaultSort.BSON())

	assert.Equal(t, bson.D{
		{Key: "title", Value: 1},
		{Key: "_id", Value: 1},
	}, Sort{Field: SortByTitle, Order: SortAsc}.BSON())
}

func TestPagePipeline(t *testing.T) {
	filter := bson.M{"tags": primitive.NewObjectID()}
	sort := DefaultSort.BSON()

	got := pagePipeline(filter, sort, pagination.Params{Page: 3, Limit: 5})

	require.Len(t, got, 3)
	assert.Equal(t, bson.D{{Key: "$match", Value: filter}}, got[0])
	assert.Equal(t, bson.D{{Key: "$sort", Value: sort}}, got[1])
	assert.Equal(t, bson.D{{Key: "$facet", Value: bson.D{
		{Key: "results", Value: bson.A{
			bson.D{{Key: "$skip", Value: int64(10)}},
			bson.D{{Key: "$limit", Value: int64(5)}},
		}},
		{Key: "total", Value: bson.A{
			bson.D{{Key: "$count", Value: "count"}},
		}},
	}}}, got[2])
}

func TestPagePipeline_NilFilter(t *testing.T) {
	got := pagePipeline(nil, nil, pagination.Params{Page: 1, Limit: 5})

	require.Len(t, got, 2)
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{}}}, got[0])
}
