package locationapp

import (
	"context"
	"testing"

	"blogicum/internal/adapters/memory"
	"blogicum/internal/core/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLocations(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	svc := NewLocationService(store.Locations())
	empty, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = store.Locations().Create(ctx, &location.Location{Name: "Tbilisi"})
	require.NoError(t, err)

	got, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tbilisi", got[0].Name)
}
