// internal/models/request.go
package models

// FulfillmentRequest is the message placed on the queue once a booking
// conversation has collected every slot. Field names match the slot names.
type FulfillmentRequest struct {
	Location string `json:"Location"`
	Cuisine  string `json:"Cuisine"`
	Time     string `json:"Time"`
	Date     string `json:"Date"`
	People   string `json:"People"`
	Email    string `json:"Email"`
}
