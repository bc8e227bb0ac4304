// internal/models/restaurant.go
package models

// Coordinates holds a restaurant's position as returned by the directory API.
type Coordinates struct {
	Latitude  float64 `json:"latitude" dynamodbav:"latitude"`
	Longitude float64 `json:"longitude" dynamodbav:"longitude"`
}

// RestaurantRecord is the table row for one restaurant. Attribute names
// including spaces are kept as-is because the table predates this service.
type RestaurantRecord struct {
	BusinessID          string      `json:"Business ID" dynamodbav:"Business ID"`
	Name                string      `json:"name" dynamodbav:"name"`
	Cuisine             string      `json:"cuisine" dynamodbav:"cuisine"`
	Location            string      `json:"location" dynamodbav:"location"`
	Rating              float64     `json:"Rating" dynamodbav:"Rating"`
	Address             []string    `json:"Address" dynamodbav:"Address"`
	Coordinates         Coordinates `json:"Coordinates" dynamodbav:"Coordinates"`
	NumberOfReviews     int         `json:"Number of Reviews" dynamodbav:"Number of Reviews"`
	ZipCode             string      `json:"Zip Code" dynamodbav:"Zip Code"`
	InsertedAtTimestamp string      `json:"insertedAtTimestamp" dynamodbav:"insertedAtTimestamp"`
}

// SupportedLocations are the boroughs the bot accepts, lowercase.
var SupportedLocations = []string{"manhattan", "bronx", "brooklyn", "queens", "staten island"}

// SupportedCuisines are the cuisines the bot accepts, lowercase.
var SupportedCuisines = []string{"chinese", "japanese", "italian", "africa", "french"}
