package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/models"
)

// ==========================
// Mock Collaborators
// ==========================

type mockDirectory struct {
	// pages[location][term] is served one page at a time, then empty.
	pages map[string][]Business
	calls []string
}

func (m *mockDirectory) Search(ctx context.Context, location, term string, offset, limit int) ([]Business, error) {
	m.calls = append(m.calls, fmt.Sprintf("%s|%s|%d", location, term, offset))
	if offset > 0 {
		return nil, nil
	}
	return m.pages[location+"|"+term], nil
}

type mockRecordStore struct {
	records []models.RestaurantRecord
	putErr  map[string]error
}

func (m *mockRecordStore) Put(ctx context.Context, record models.RestaurantRecord) error {
	if err := m.putErr[record.BusinessID]; err != nil {
		return err
	}
	m.records = append(m.records, record)
	return nil
}

type mockIndexWriter struct {
	indexed []string
}

func (m *mockIndexWriter) IndexRestaurant(ctx context.Context, businessID, cuisine string) error {
	m.indexed = append(m.indexed, businessID)
	return nil
}

// ==========================
// Test Helpers
// ==========================

func business(id, alias, name string) Business {
	b := Business{
		ID:          id,
		Alias:       alias,
		Name:        name,
		Rating:      4.0,
		ReviewCount: 120,
	}
	b.Coordinates.Latitude = 40.7
	b.Coordinates.Longitude = -74.0
	b.Location.DisplayAddress = []string{"1 Main St", "New York, NY"}
	b.Location.ZipCode = "10001"
	return b
}

func testLoaderConfig() *Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	return cfg
}

// ==========================
// Tests
// ==========================

func TestRun_WritesStoreAndIndex(t *testing.T) {
	directory := &mockDirectory{
		pages: map[string][]Business{
			"manhattan|italian restaurants": {
				business("biz-1", "trattoria-uno", "Trattoria Uno"),
				business("biz-2", "pasta-due", "Pasta Due"),
			},
		},
	}
	store := &mockRecordStore{}
	index := &mockIndexWriter{}
	loader := NewLoader(testLoaderConfig(), logger.NewNoOpLogger(), directory, store, index)

	result, err := loader.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Written)
	assert.Zero(t, result.Failed)

	require.Len(t, store.records, 2)
	assert.Equal(t, "biz-1", store.records[0].BusinessID)
	assert.Equal(t, "italian", store.records[0].Cuisine)
	assert.Equal(t, "manhattan", store.records[0].Location)
	assert.Equal(t, []string{"1 Main St", "New York, NY"}, store.records[0].Address)

	assert.Equal(t, []string{"biz-1", "biz-2"}, index.indexed)
}

func TestRun_SkipsDuplicateAliasesWithinRun(t *testing.T) {
	// The same alias shows up under two cuisines; only the first wins.
	shared := business("biz-1", "fusion-place", "Fusion Place")
	directory := &mockDirectory{
		pages: map[string][]Business{
			"manhattan|chinese restaurants":  {shared},
			"manhattan|japanese restaurants": {shared},
		},
	}
	store := &mockRecordStore{}
	index := &mockIndexWriter{}
	loader := NewLoader(testLoaderConfig(), logger.NewNoOpLogger(), directory, store, index)

	result, err := loader.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, store.records, 1)
	assert.Equal(t, "chinese", store.records[0].Cuisine)
}

func TestRun_RecordFailureIsSkippedNotFatal(t *testing.T) {
	directory := &mockDirectory{
		pages: map[string][]Business{
			"manhattan|italian restaurants": {
				business("biz-bad", "bad-place", "Bad Place"),
				business("biz-2", "pasta-due", "Pasta Due"),
			},
		},
	}
	store := &mockRecordStore{putErr: map[string]error{"biz-bad": assert.AnError}}
	index := &mockIndexWriter{}
	loader := NewLoader(testLoaderConfig(), logger.NewNoOpLogger(), directory, store, index)

	result, err := loader.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"biz-2"}, index.indexed)
}

func TestRun_CoversFullGrid(t *testing.T) {
	directory := &mockDirectory{pages: map[string][]Business{}}
	loader := NewLoader(testLoaderConfig(), logger.NewNoOpLogger(), directory, &mockRecordStore{}, &mockIndexWriter{})

	_, err := loader.Run(context.Background())

	require.NoError(t, err)
	// 5 locations x 5 cuisines, one (empty) first page each.
	assert.Len(t, directory.calls, 25)
	assert.Contains(t, directory.calls, "staten island|french restaurants|0")
}

func TestRun_StopsPagingAfterEmptyPage(t *testing.T) {
	directory := &mockDirectory{
		pages: map[string][]Business{
			"manhattan|chinese restaurants": {business("biz-1", "one", "One")},
		},
	}
	loader := NewLoader(testLoaderConfig(), logger.NewNoOpLogger(), directory, &mockRecordStore{}, &mockIndexWriter{})

	_, err := loader.Run(context.Background())

	require.NoError(t, err)
	// One extra call at offset 50 for the non-empty pair, none beyond.
	assert.Contains(t, directory.calls, "manhattan|chinese restaurants|50")
	assert.NotContains(t, directory.calls, "manhattan|chinese restaurants|100")
}
