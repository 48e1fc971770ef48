// Package entity contains the core business objects of the project.
package entity

import "time"

// UserAccount represents a registered quiz user persisted in the document store.
// Passwords are stored only as bcrypt hashes and the SSN only as its last four
// digits; the raw values never reach the database.
type UserAccount struct {
	ID           string    `json:"id"`            // Document id assigned by the database.
	Name         string    `json:"name"`          // Display name collected on the registration form.
	Email        string    `json:"email"`         // Unique login identifier.
	PhoneNumber  string    `json:"phoneNumber"`   // Second factor for the lookup-style login.
	PasswordHash string    `json:"-"`             // Bcrypt hash, never serialized in responses.
	SSNLast4     string    `json:"ssnLast4"`      // Last four digits kept for display, nothing more.
	CreatedAt    time.Time `json:"createdAt"`     // Timestamp of registration.
}
