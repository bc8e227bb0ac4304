package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-concierge/internal/models"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	v := NewValidator(loc)
	// Pin "today" so date boundary cases are stable.
	v.now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, loc)
	}
	return v
}

func strPtr(s string) *string {
	return &s
}

func TestValidate_EmptySlotsAreValid(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(models.Slots{})

	assert.True(t, result.Valid)
	assert.Empty(t, result.ViolatedSlot)
}

func TestValidate_Location(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name     string
		location string
		valid    bool
	}{
		{"manhattan lowercase", "manhattan", true},
		{"manhattan mixed case", "Manhattan", true},
		{"staten island", "Staten Island", true},
		{"unsupported city", "boston", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(models.Slots{Location: strPtr(tt.location)})

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.SlotLocation, result.ViolatedSlot)
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestValidate_Cuisine(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		cuisine string
		valid   bool
	}{
		{"italian", "Italian", true},
		{"chinese", "chinese", true},
		{"unsupported cuisine", "mexican", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(models.Slots{Cuisine: strPtr(tt.cuisine)})

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.SlotCuisine, result.ViolatedSlot)
			}
		})
	}
}

func TestValidate_Time(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid evening time", "19:00", true},
		{"valid morning time", "09:30", true},
		{"too short", "9:00", false},
		{"too long", "19:000", false},
		{"non-numeric hour", "ab:00", false},
		{"non-numeric minute", "19:xy", false},
		{"no colon", "19000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(models.Slots{Time: strPtr(tt.value)})

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.SlotTime, result.ViolatedSlot)
			}
		})
	}
}

func TestValidate_Date(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"today", "2024-06-15", true},
		{"tomorrow", "2024-06-16", true},
		{"far future", "2099-01-01", true},
		{"yesterday", "2024-06-14", false},
		{"not a date", "next friday", false},
		{"wrong format", "06/15/2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(models.Slots{Date: strPtr(tt.value)})

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.SlotDate, result.ViolatedSlot)
			}
		})
	}
}

func TestValidate_People(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"four people", "4", true},
		{"one person", "1", true},
		{"zero people", "0", false},
		{"negative", "-2", false},
		{"non-integer", "four", false},
		{"decimal", "2.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(models.Slots{People: strPtr(tt.value)})

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.SlotPeople, result.ViolatedSlot)
			}
		})
	}
}

func TestValidate_Email(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple address", "a@b.com", true},
		{"dotted local part", "first.last@example.org", true},
		{"numeric tld", "user@host.123", true},
		{"missing at", "not-an-email", false},
		{"missing tld", "user@host", false},
		{"long tld rejected", "user@example.museum", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(models.Slots{Email: strPtr(tt.value)})

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.SlotEmail, result.ViolatedSlot)
			}
		})
	}
}

func TestValidate_ChecksRunInOrder(t *testing.T) {
	v := newTestValidator(t)

	// Both location and email are invalid; location is reported first.
	result := v.Validate(models.Slots{
		Location: strPtr("boston"),
		Email:    strPtr("not-an-email"),
	})

	assert.False(t, result.Valid)
	assert.Equal(t, models.SlotLocation, result.ViolatedSlot)
}

func TestValidate_FullValidSlotSet(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(models.Slots{
		Location: strPtr("Manhattan"),
		Cuisine:  strPtr("Italian"),
		Date:     strPtr("2099-01-01"),
		Time:     strPtr("19:00"),
		People:   strPtr("4"),
		Email:    strPtr("a@b.com"),
	})

	assert.True(t, result.Valid)
	assert.Empty(t, result.ViolatedSlot)
	assert.Empty(t, result.Message)
}
