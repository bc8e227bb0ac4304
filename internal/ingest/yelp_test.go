package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-concierge/internal/common/httpx"
)

func TestYelpClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "manhattan", r.URL.Query().Get("location"))
		assert.Equal(t, "italian restaurants", r.URL.Query().Get("term"))
		assert.Equal(t, "50", r.URL.Query().Get("offset"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"businesses": [
				{
					"id": "biz-1",
					"alias": "trattoria-uno",
					"name": "Trattoria Uno",
					"rating": 4.5,
					"review_count": 210,
					"coordinates": {"latitude": 40.71, "longitude": -74.0},
					"location": {"display_address": ["1 Main St", "New York, NY 10001"], "zip_code": "10001"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewYelpClient(httpx.NewClient(5*time.Second), server.URL, "test-key")

	businesses, err := client.Search(context.Background(), "manhattan", "italian restaurants", 50, 50)

	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, "biz-1", businesses[0].ID)
	assert.Equal(t, "trattoria-uno", businesses[0].Alias)
	assert.Equal(t, 4.5, businesses[0].Rating)
	assert.Equal(t, 210, businesses[0].ReviewCount)
	assert.Equal(t, "10001", businesses[0].Location.ZipCode)
}

func TestYelpClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewYelpClient(httpx.NewClient(5*time.Second), server.URL, "test-key")

	_, err := client.Search(context.Background(), "manhattan", "italian restaurants", 0, 50)

	assert.Error(t, err)
}
