package dialog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"dining-concierge/internal/models"
)

// ValidationResult reports the first slot value that failed a check, together
// with the re-prompt text for the user.
type ValidationResult struct {
	Valid        bool
	ViolatedSlot string
	Message      string
}

var emailPattern = regexp.MustCompile(`^.+@(\[?)[a-zA-Z0-9\-.]+\.([a-zA-Z]{2,3}|[0-9]{1,3})(\]?)$`)

var supportedLocations = toSet(models.SupportedLocations)
var supportedCuisines = toSet(models.SupportedCuisines)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Validator checks collected slot values against the booking rules. Dates are
// judged against "today" in the configured reference time zone.
type Validator struct {
	loc *time.Location
	now func() time.Time
}

func NewValidator(loc *time.Location) *Validator {
	return &Validator{
		loc: loc,
		now: time.Now,
	}
}

// Validate runs the slot checks in a fixed order and stops at the first
// violation. A nil slot has not been collected yet and always passes.
func (v *Validator) Validate(slots models.Slots) ValidationResult {
	if slots.Location != nil {
		if _, ok := supportedLocations[strings.ToLower(*slots.Location)]; !ok {
			return invalid(models.SlotLocation,
				"I did not recognize that, would you like a different location in NYC? Our most popular location is Manhattan")
		}
	}

	if slots.Cuisine != nil {
		if _, ok := supportedCuisines[strings.ToLower(*slots.Cuisine)]; !ok {
			return invalid(models.SlotCuisine,
				"I did not recognize that, would you like a different cuisine? Our most popular cuisine is Italian")
		}
	}

	if slots.Time != nil {
		if !isValidTime(*slots.Time) {
			return invalid(models.SlotTime,
				"I did not recognize that, what time would you like to dine?")
		}
	}

	if slots.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *slots.Date, v.loc)
		if err != nil {
			return invalid(models.SlotDate,
				"I did not understand that, what date works best for you?")
		}
		if date.Before(v.today()) {
			return invalid(models.SlotDate,
				"Sorry, I can only give you suggestions after today. Can you try a different date?")
		}
	}

	if slots.People != nil {
		people, err := strconv.Atoi(*slots.People)
		if err != nil {
			return invalid(models.SlotPeople,
				"I did not recognize that, how many people do you have?")
		}
		if people <= 0 {
			return invalid(models.SlotPeople,
				"People number should be greater than 0. Can you try a different number?")
		}
	}

	if slots.Email != nil {
		if !emailPattern.MatchString(*slots.Email) {
			return invalid(models.SlotEmail,
				"The email address is invalid. Can you try a different email?")
		}
	}

	return ValidationResult{Valid: true}
}

// today returns midnight of the current day in the reference time zone.
func (v *Validator) today() time.Time {
	now := v.now().In(v.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, v.loc)
}

// isValidTime accepts exactly "HH:MM" with integer tokens.
func isValidTime(value string) bool {
	if len(value) != 5 {
		return false
	}
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return false
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return false
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return false
	}
	return true
}

func invalid(slot, message string) ValidationResult {
	return ValidationResult{
		Valid:        false,
		ViolatedSlot: slot,
		Message:      message,
	}
}
