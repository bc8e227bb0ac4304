// internal/restaurants/index.go
package restaurants

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"dining-concierge/internal/common/database"
	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
)

// searchSize caps how many identifiers one cuisine query returns.
const searchSize = 1000

// indexDocument is the slim document kept in the search index. The full
// record lives in the document store; the index only answers "which business
// IDs match this cuisine".
type indexDocument struct {
	RestaurantID string `json:"RestaurantID"`
	Cuisine      string `json:"cuisine"`
}

// Index wraps the search-side operations on the restaurant index.
type Index struct {
	es     *database.ElasticsearchClient
	index  string
	logger logger.Logger
}

func NewIndex(es *database.ElasticsearchClient, indexName string, log logger.Logger) *Index {
	return &Index{
		es:     es,
		index:  indexName,
		logger: log,
	}
}

// SearchIDsByCuisine returns up to 1000 business identifiers whose cuisine
// field matches the given cuisine. No ordering is guaranteed.
func (i *Index) SearchIDsByCuisine(ctx context.Context, cuisine string) ([]string, error) {
	query := map[string]interface{}{
		"size": searchSize,
		"query": map[string]interface{}{
			"query_string": map[string]interface{}{
				"default_field": "cuisine",
				"query":         cuisine,
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	res, err := i.es.Client.Search(
		i.es.Client.Search.WithContext(ctx),
		i.es.Client.Search.WithIndex(i.index),
		i.es.Client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, errors.NewSearchQueryFailedError(cuisine, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.NewSearchQueryFailedError(cuisine, fmt.Errorf("search returned %s", res.Status()))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source indexDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewSearchQueryFailedError(cuisine, fmt.Errorf("failed to decode search response: %w", err))
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.Source.RestaurantID)
	}

	i.logger.Debug("Search index query completed", map[string]interface{}{
		"cuisine": cuisine,
		"matches": len(ids),
	})

	return ids, nil
}

// IndexRestaurant writes the slim cuisine document for one business ID.
// Indexing the same ID twice overwrites the previous document.
func (i *Index) IndexRestaurant(ctx context.Context, businessID, cuisine string) error {
	doc := indexDocument{
		RestaurantID: businessID,
		Cuisine:      cuisine,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode index document: %w", err)
	}

	res, err := i.es.Client.Index(
		i.index,
		bytes.NewReader(body),
		i.es.Client.Index.WithContext(ctx),
		i.es.Client.Index.WithDocumentID(businessID),
	)
	if err != nil {
		return fmt.Errorf("failed to index restaurant %s: %w", businessID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing restaurant %s returned %s", businessID, res.Status())
	}

	return nil
}
