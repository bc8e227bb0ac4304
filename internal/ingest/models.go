// internal/ingest/models.go
package ingest

// Business mirrors one entry from the directory search API.
type Business struct {
	ID          string  `json:"id"`
	Alias       string  `json:"alias"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Location struct {
		DisplayAddress []string `json:"display_address"`
		ZipCode        string   `json:"zip_code"`
	} `json:"location"`
}

type searchResponse struct {
	Businesses []Business `json:"businesses"`
}

// RunResult summarizes one ingestion run.
type RunResult struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
