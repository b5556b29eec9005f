package services

import "errors"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var (
	// ErrCancelled rejects edits and re-cancellation; cancelled is terminal.
	ErrCancelled = errors.New("reservation is cancelled")
	// ErrNotPending rejects confirming anything but a pending reservation.
	ErrNotPending = errors.New("reservation is not pending")
)

// Cancel releases a reservation's slot. The current status is returned
// unchanged on rejection.
func Cancel(status string) (string, error) {
	if status == StatusCancelled {
		return status, ErrCancelled
	}
	return StatusCancelled, nil
}

// Confirm transitions pending to confirmed.
func Confirm(status string) (string, error) {
	if status != StatusPending {
		return status, ErrNotPending
	}
	return StatusConfirmed, nil
}

// Reschedule applies an edit to a visit booking. Every edit needs
// re-approval, so the result is always pending.
func Reschedule(status string) (string, error) {
	if status == StatusCancelled {
		return status, ErrCancelled
	}
	return StatusPending, nil
}
