// Package directory resolves available doctors for a specialty.
package directory

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"medical-report-assistant/internal/store"
)

// MaxDoctors caps how many doctors a lookup returns.
const MaxDoctors = 5

// DoctorRecord is a doctor joined with the owning user profile.
type DoctorRecord struct {
	DoctorID   string `json:"doctorId"`
	Name       string `json:"name"`
	Degree     string `json:"degree"`
	Experience int    `json:"experience"`
	Location   string `json:"location"`
}

type Gateway struct {
	store store.Store
}

// NewGateway accepts a nil store, in which case every lookup is empty.
func NewGateway(s store.Store) *Gateway {
	return &Gateway{store: s}
}

// Lookup never fails: store errors are logged and yield an empty list.
func (g *Gateway) Lookup(ctx context.Context, specialty string) []DoctorRecord {
	records := []DoctorRecord{}
	if g == nil || g.store == nil {
		log.Warn("doctor store not configured, returning no doctors")
		return records
	}

	doctors, err := g.store.FindAvailableDoctors(ctx, specialty, MaxDoctors)
	if err != nil {
		log.WithError(err).WithField("specialty", specialty).Error("doctor lookup failed")
		return records
	}

	for _, d := range doctors {
		user, err := g.store.FindUser(ctx, d.UserID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			log.WithError(err).WithField("specialty", specialty).Error("user lookup failed")
			return []DoctorRecord{}
		}
		records = append(records, DoctorRecord{
			DoctorID:   user.ID,
			Name:       strings.TrimSpace(user.FirstName + " " + user.LastName),
			Degree:     d.Degree,
			Experience: d.Experience,
			Location:   user.City,
		})
	}

	log.WithFields(log.Fields{"specialty": specialty, "doctors": len(records)}).Debug("doctor lookup complete")
	return records
}
