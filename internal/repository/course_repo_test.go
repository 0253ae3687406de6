package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchBlankTextSkipsStore(t *testing.T) {
	// Blank text returns before the collection is consulted, so no store
	// is needed.
	for _, text := range []string{"", "  ", "\t"} {
		courses, err := (&courseRepo{}).Search(context.Background(), text)
		require.NoError(t, err)
		require.NotNil(t, courses)
		assert.Empty(t, courses)
	}
}

func TestSearchFilterTextOnly(t *testing.T) {
	filter := searchFilter("programming")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	category := or[0].(bson.M)["category"].(bson.M)
	assert.Equal(t, "programming", category["$regex"])
	assert.Equal(t, "i", category["$options"])

	instructor := or[1].(bson.M)["instructor.name"].(bson.M)
	assert.Equal(t, "programming", instructor["$regex"])
	assert.Equal(t, "i", instructor["$options"])
}

func TestSearchFilterNumericAddsRatingClause(t *testing.T) {
	filter := searchFilter("4.5")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	rating := or[2].(bson.M)["rating"].(bson.M)
	assert.Equal(t, 4.5, rating["$gte"])
}

func TestSearchFilterNonNumericHasNoRatingClause(t *testing.T) {
	or := searchFilter("4stars")["$or"].(bson.A)
	assert.Len(t, or, 2)
}
