package entity

import (
	"math"
	"time"
)

// User is the aggregate root for user domain.
// ID is assigned once on creation and never changes afterwards.
type User struct {
	ID        string
	Name      string
	Email     string
	Age       uint8
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUser carries the fields required to register a user.
type CreateUser struct {
	Name  string
	Email string
	Age   uint8
}

// UpdateUser is a partial update of the user selected by ID.
// A nil field keeps the stored value; a non-nil field replaces it, even when empty.
type UpdateUser struct {
	ID    string
	Name  *string
	Email *string
	Age   *uint8
}

// IsEmpty reports whether the update carries no field changes.
func (u UpdateUser) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Age == nil
}

// Merge returns current with the present fields of u applied.
func (u UpdateUser) Merge(current User) User {
	if u.Name != nil {
		current.Name = *u.Name
	}
	if u.Email != nil {
		current.Email = *u.Email
	}
	if u.Age != nil {
		current.Age = *u.Age
	}
	return current
}

// AgeFromStorage narrows a stored age column into the domain range.
func AgeFromStorage(v int64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(v)
	}
}
