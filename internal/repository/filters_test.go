package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, listFilter(""))
	assert.Equal(t, bson.M{"genres": "Action"}, listFilter("Action"))
}

func TestSearchFilterQueryOnly(t *testing.T) {
	filter := searchFilter("heist", "", 0)

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 2)
	assert.Equal(t, bson.M{"title": bson.M{"$regex": "heist", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"synopsis": bson.M{"$regex": "heist", "$options": "i"}}, or[1])

	_, hasGenre := filter["genres"]
	_, hasYear := filter["releaseYear"]
	assert.False(t, hasGenre)
	assert.False(t, hasYear)
}

func TestSearchFilterWithGenreAndYear(t *testing.T) {
	filter := searchFilter("heist", "Thriller", 2023)

	assert.Equal(t, "Thriller", filter["genres"])
	assert.Equal(t, 2023, filter["releaseYear"])
}

func TestSearchFilterQuotesRegexMeta(t *testing.T) {
	// user input is a substring, not a pattern
	filter := searchFilter("what?", "", 0)

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(bson.M)
	assert.Equal(t, `what\?`, title["$regex"])
}
