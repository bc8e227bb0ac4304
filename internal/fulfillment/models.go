// internal/fulfillment/models.go
package fulfillment

// PassResult summarizes one poll-process-acknowledge pass over the queue.
type PassResult struct {
	Received  int `json:"received"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}
