package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByNameMatchesPartialCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedHotel(t, db, "Grand Central Hotel Glasgow")
	seedHotel(t, db, "Blythswood Square Hotel")
	seedHotel(t, db, "Dakota Glasgow")
	svc := NewHotelService(db)

	hotels, err := svc.FindByName(context.Background(), "gLaSgOw")
	require.NoError(t, err)

	require.Len(t, hotels, 2)
	require.Equal(t, "Dakota Glasgow", hotels[0].Name)
	require.Equal(t, "Grand Central Hotel Glasgow", hotels[1].Name)
}

func TestFindByNameOrdersAlphabetically(t *testing.T) {
	db := newTestDB(t)
	seedHotel(t, db, "Grand Central Hotel Glasgow")
	seedHotel(t, db, "Blythswood Square Hotel")
	svc := NewHotelService(db)

	hotels, err := svc.FindByName(context.Background(), "hotel")
	require.NoError(t, err)

	require.Len(t, hotels, 2)
	require.Equal(t, "Blythswood Square Hotel", hotels[0].Name)
	require.Equal(t, "Grand Central Hotel Glasgow", hotels[1].Name)
}

func TestFindByNameEmptyQueryReturnsEmptyList(t *testing.T) {
	db := newTestDB(t)
	seedHotel(t, db, "Dakota Glasgow")
	svc := NewHotelService(db)

	for _, q := range []string{"", "   "} {
		hotels, err := svc.FindByName(context.Background(), q)
		require.NoError(t, err)
		require.NotNil(t, hotels)
		require.Empty(t, hotels)
	}
}

func TestFindByNameNoMatches(t *testing.T) {
	db := newTestDB(t)
	seedHotel(t, db, "Dakota Glasgow")
	svc := NewHotelService(db)

	hotels, err := svc.FindByName(context.Background(), "Edinburgh")
	require.NoError(t, err)
	require.Empty(t, hotels)
}
