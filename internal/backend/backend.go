// Package backend is the client facade over authentication and the record
// document store. Controllers depend on its interfaces only; failures
// surface as coded errors that the i18n package knows how to translate.
package backend

import (
	"errors"
	"fmt"

	"financas/internal/models"
)

// Error codes exposed by the facade. The auth/* codes match the codes the
// mobile clients already translate; they must not be renamed.
const (
	CodeWrongPassword  = "auth/wrong-password"
	CodeUserNotFound   = "auth/user-not-found"
	CodeInvalidEmail   = "auth/invalid-email"
	CodeWeakPassword   = "auth/weak-password"
	CodeEmailInUse     = "auth/email-already-in-use"
	CodeRecordNotFound = "store/record-not-found"
	CodeWriteFailed    = "store/write-failed"
)

// Error is a coded backend failure.
type Error struct {
	Code string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// NewError builds a coded backend error wrapping an optional cause.
func NewError(code string, cause error) *Error {
	return &Error{Code: code, Err: cause}
}

// CodeOf extracts the backend error code from err, or "" if err carries none.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Authenticator is the authentication boundary of the facade.
type Authenticator interface {
	// Authenticate verifies credentials and returns the matching user.
	Authenticate(email, password string) (*models.User, error)
	// Register creates a new user from credentials.
	Register(email, password string) (*models.User, error)
	// UpdateDisplayName attaches a display name to an existing user.
	UpdateDisplayName(userID, displayName string) error
	// SignOut tears down any backend-side session state.
	SignOut() error
}

// RecordFields is the mutable field set of a financial record. Updates
// write these fields only; creation timestamp and owner are never touched.
type RecordFields struct {
	Description string
	Amount      float64
	Date        string
	Category    string
}

// RecordStore is the document-store boundary of the facade. Collections
// are addressed by name ("receitas", "despesas").
type RecordStore interface {
	// Add inserts a record and returns its assigned id. The creation
	// timestamp is assigned server-side on insert.
	Add(collection string, record *models.Record) (string, error)
	// Update overwrites the mutable fields of an existing record. A
	// non-nil ownerID restricts the match to that owner's records.
	Update(collection, id string, fields RecordFields, ownerID *string) error
	// Query returns the records of a collection, unordered. A non-nil
	// ownerID restricts the result to that owner's records.
	Query(collection string, ownerID *string) ([]models.Record, error)
}

// Backend is the full client facade.
type Backend interface {
	Authenticator
	RecordStore
}
