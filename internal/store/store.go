// Package store reads doctor and user profiles from a document database.
package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// Collection names shared by every backend.
const (
	DoctorsCollection = "doctors"
	UsersCollection   = "users"
)

var ErrNotFound = errors.New("not found")

// DoctorProfile is the subset of a doctors document used for lookups.
type DoctorProfile struct {
	UserID     string
	Degree     string
	Experience int
}

// UserProfile is the subset of a users document used for lookups.
type UserProfile struct {
	ID        string
	FirstName string
	LastName  string
	City      string
}

// Store defines the read operations the doctor directory needs.
type Store interface {
	// FindAvailableDoctors returns at most limit available doctors whose
	// specialization equals specialization exactly.
	FindAvailableDoctors(ctx context.Context, specialization string, limit int64) ([]DoctorProfile, error)
	// FindUser returns ErrNotFound when no user has the given id.
	FindUser(ctx context.Context, id string) (*UserProfile, error)
}
