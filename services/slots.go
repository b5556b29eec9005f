package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// NowFunc is the clock used for past-slot filtering and verification
// timestamps. Tests swap it out.
var NowFunc = time.Now

// BookingSlots are the apartment visit times.
var BookingSlots = []string{
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00", "19:30", "20:00",
}

// ServiceSlots are the cleaning and health appointment times.
var ServiceSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

func ValidSlot(catalog []string, slot string) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}

// Available returns the catalog entries not present in taken, preserving
// catalog order.
func Available(catalog []string, taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		takenSet[s] = struct{}{}
	}

	open := make([]string, 0, len(catalog))
	for _, s := range catalog {
		if _, ok := takenSet[s]; !ok {
			open = append(open, s)
		}
	}
	return open
}

// FilterPastSlots drops catalog entries whose hour has already passed when
// date is the same calendar day as now. Other dates pass through untouched.
func FilterPastSlots(catalog []string, date time.Time, now time.Time) []string {
	if !sameDay(date, now) {
		return catalog
	}

	open := make([]string, 0, len(catalog))
	for _, s := range catalog {
		if slotHour(s) > now.Hour() {
			open = append(open, s)
		}
	}
	return open
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func slotHour(slot string) int {
	h, _, found := strings.Cut(slot, ":")
	if !found {
		return 0
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	return hour
}

// Midnight truncates a time to its calendar day in UTC. All reservation
// date comparisons happen at this granularity; the fixed zone keeps the
// same calendar day sent with different UTC offsets on one stored instant.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActiveSlots plucks the slot labels of non-cancelled rows of the given
// reservation model, further scoped by query. Shared by the booking,
// cleaning and health controllers.
func ActiveSlots(db *gorm.DB, model interface{}, query string, args ...interface{}) ([]string, error) {
	var slots []string
	err := db.Model(model).
		Where("status <> ?", StatusCancelled).
		Where(query, args...).
		Pluck("slot", &slots).Error
	return slots, err
}

// SlotTaken reports whether an active reservation already claims the slot.
// excludeID skips a record's own row during updates.
func SlotTaken(db *gorm.DB, model interface{}, excludeID uint, query string, args ...interface{}) (bool, error) {
	var count int64
	q := db.Model(model).Where("status <> ?", StatusCancelled).Where(query, args...)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsUniqueViolation detects the partial unique index firing underneath a
// concurrent insert that slipped past the pre-check.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
