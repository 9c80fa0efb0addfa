package types

import (
	"time"

	"github.com/google/uuid"
)

// ProfileForm carries the five editable profile fields as the form holds them,
// including age as free text.
type ProfileForm struct {
	Name              string `json:"name"`
	Age               string `json:"age"`
	Location          string `json:"location"`
	PreferredLanguage string `json:"preferred_language"`
	PhoneNumber       string `json:"phone_number"`
}

// AccountInfo is the identity block shown on the profile page
type AccountInfo struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is returned by profile load and save
type ProfileResponse struct {
	Profile ProfileForm  `json:"profile"`
	Account *AccountInfo `json:"account,omitempty"`
	Toast   *Toast       `json:"toast,omitempty"`
}

// Language is one selectable preferred language
type Language struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
