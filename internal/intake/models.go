// internal/intake/models.go
package intake

// Unstructured is the free-text payload exchanged with the chat frontend.
type Unstructured struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

type ChatMessage struct {
	Type         string       `json:"type"`
	Unstructured Unstructured `json:"unstructured"`
}

// ChatRequest is the inbound body on the chat endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the uniform envelope returned to the frontend.
type ChatResponse struct {
	StatusCode int           `json:"statusCode"`
	Messages   []ChatMessage `json:"messages"`
}
