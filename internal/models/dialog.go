// internal/models/dialog.go
package models

// Slots carries the six values collected over the course of a booking
// conversation. A nil field means the value has not been provided yet.
type Slots struct {
	Location *string `json:"Location"`
	Cuisine  *string `json:"Cuisine"`
	Time     *string `json:"Time"`
	Date     *string `json:"Date"`
	People   *string `json:"People"`
	Email    *string `json:"Email"`
}

// Clear resets the named slot so the engine re-elicits it.
func (s *Slots) Clear(name string) {
	switch name {
	case SlotLocation:
		s.Location = nil
	case SlotCuisine:
		s.Cuisine = nil
	case SlotTime:
		s.Time = nil
	case SlotDate:
		s.Date = nil
	case SlotPeople:
		s.People = nil
	case SlotEmail:
		s.Email = nil
	}
}

// Slot names as they appear on the wire.
const (
	SlotLocation = "Location"
	SlotCuisine  = "Cuisine"
	SlotTime     = "Time"
	SlotDate     = "Date"
	SlotPeople   = "People"
	SlotEmail    = "Email"
)

type Intent struct {
	Name               string `json:"name"`
	Slots              Slots  `json:"slots"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias"`
	Version string `json:"version"`
}

// Invocation sources for a dialog event.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// DialogEvent is the inbound request from the conversation engine.
type DialogEvent struct {
	CurrentIntent     Intent            `json:"currentIntent"`
	InvocationSource  string            `json:"invocationSource"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	UserID            string            `json:"userId,omitempty"`
	Bot               *Bot              `json:"bot,omitempty"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Dialog action types.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionConfirmIntent = "ConfirmIntent"
	ActionDelegate      = "Delegate"
	ActionClose         = "Close"
)

// Fulfillment states for a Close action.
const (
	StateFulfilled = "Fulfilled"
	StateFailed    = "Failed"
)

type DialogAction struct {
	Type             string   `json:"type"`
	IntentName       string   `json:"intentName,omitempty"`
	Slots            *Slots   `json:"slots,omitempty"`
	SlotToElicit     string   `json:"slotToElicit,omitempty"`
	FulfillmentState string   `json:"fulfillmentState,omitempty"`
	Message          *Message `json:"message,omitempty"`
}

// DialogResponse is the outbound directive back to the conversation engine.
type DialogResponse struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// ElicitSlot tells the engine to re-ask for one slot with the given prompt.
func ElicitSlot(sessionAttributes map[string]string, intentName string, slots Slots, slotToElicit, content string) DialogResponse {
	if sessionAttributes == nil {
		sessionAttributes = map[string]string{}
	}
	return DialogResponse{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        &slots,
			SlotToElicit: slotToElicit,
			Message: &Message{
				ContentType: "PlainText",
				Content:     content,
			},
		},
	}
}

// ConfirmIntent asks the user to confirm the intent with the collected slots.
func ConfirmIntent(sessionAttributes map[string]string, intentName string, slots Slots, content string) DialogResponse {
	if sessionAttributes == nil {
		sessionAttributes = map[string]string{}
	}
	return DialogResponse{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:       ActionConfirmIntent,
			IntentName: intentName,
			Slots:      &slots,
			Message: &Message{
				ContentType: "PlainText",
				Content:     content,
			},
		},
	}
}

// Delegate hands control back to the engine with the current slot values.
func Delegate(sessionAttributes map[string]string, slots Slots) DialogResponse {
	if sessionAttributes == nil {
		sessionAttributes = map[string]string{}
	}
	return DialogResponse{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: &slots,
		},
	}
}

// Close ends the conversation with a final message.
func Close(sessionAttributes map[string]string, fulfillmentState, content string) DialogResponse {
	if sessionAttributes == nil {
		sessionAttributes = map[string]string{}
	}
	return DialogResponse{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: fulfillmentState,
			Message: &Message{
				ContentType: "PlainText",
				Content:     content,
			},
		},
	}
}
