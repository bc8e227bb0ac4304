// internal/fulfillment/format.go
package fulfillment

import (
	"fmt"
	"strconv"
	"strings"

	"dining-concierge/internal/models"
)

// buildSuggestionMessage renders the email body: a greeting restating the
// request, a numbered list of suggestions, and a closing line.
func buildSuggestionMessage(request models.FulfillmentRequest, records []models.RestaurantRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Hello! Here are my %s restaurant suggestions for %s people, for %s at %s: \n",
		request.Cuisine, request.People, request.Date, request.Time))

	for i, r := range records {
		b.WriteString(fmt.Sprintf("%d. %s, located at %s, rating %s\n",
			i+1, r.Name, strings.Join(r.Address, " "), strconv.FormatFloat(r.Rating, 'g', -1, 64)))
	}

	b.WriteString("Enjoy your meal!")

	return b.String()
}
