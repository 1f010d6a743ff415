package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/IrumShehryar/Restaurant-Website/database"
	"github.com/IrumShehryar/Restaurant-Website/store"
	"github.com/IrumShehryar/Restaurant-Website/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "restaurant.db"))
		require.NoError(t, err)

		s := store.NewSQLiteStore(db)
		t.Cleanup(func() { s.Close(context.Background()) })
		return s
	})
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant.db")
	ctx := context.Background()

	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	s := store.NewSQLiteStore(db)
	created, err := s.CreateMenuItem(ctx, storetest.Sample("Aurora Bites"))
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	db, err = database.OpenSQLite(path)
	require.NoError(t, err)
	s = store.NewSQLiteStore(db)
	defer s.Close(ctx)

	got, err := s.GetMenuItem(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}
