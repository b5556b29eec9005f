package services

import (
	"reflect"
	"testing"
)

func TestConfirmOnlyFromPending(t *testing.T) {
	got, err := Confirm(StatusPending)
	if err != nil || got != StatusConfirmed {
		t.Fatalf("Confirm(pending) = %q, %v; want confirmed, nil", got, err)
	}

	// Anything else is rejected with the status unchanged
	for _, status := range []string{StatusConfirmed, StatusCancelled} {
		got, err := Confirm(status)
		if err == nil {
			t.Fatalf("Confirm(%s) accepted, want rejection", status)
		}
		if got != status {
			t.Fatalf("Confirm(%s) changed status to %q on rejection", status, got)
		}
	}
}

func TestRescheduleAlwaysLandsOnPending(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed} {
		got, err := Reschedule(status)
		if err != nil || got != StatusPending {
			t.Fatalf("Reschedule(%s) = %q, %v; want pending, nil", status, got, err)
		}
	}

	got, err := Reschedule(StatusCancelled)
	if err == nil {
		t.Fatal("Reschedule(cancelled) accepted, want rejection")
	}
	if got != StatusCancelled {
		t.Fatalf("Reschedule(cancelled) changed status to %q on rejection", got)
	}
}

func TestCancelIsTerminal(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed} {
		got, err := Cancel(status)
		if err != nil || got != StatusCancelled {
			t.Fatalf("Cancel(%s) = %q, %v; want cancelled, nil", status, got, err)
		}
	}

	got, err := Cancel(StatusCancelled)
	if err == nil {
		t.Fatal("Cancel(cancelled) accepted, want rejection")
	}
	if got != StatusCancelled {
		t.Fatalf("Cancel(cancelled) = %q, want cancelled", got)
	}
}

// slotClaim mirrors a reservation row for walking the lifecycle against
// the availability computation.
type slotClaim struct {
	Slot   string
	Status string
}

func claimedSlots(claims []slotClaim) []string {
	var taken []string
	for _, c := range claims {
		if c.Status != StatusCancelled {
			taken = append(taken, c.Slot)
		}
	}
	return taken
}

func TestCancelReleasesSlot(t *testing.T) {
	claims := []slotClaim{{Slot: "15:00", Status: StatusConfirmed}}

	open := Available(BookingSlots, claimedSlots(claims))
	for _, s := range open {
		if s == "15:00" {
			t.Fatal("claimed slot 15:00 still listed as available")
		}
	}

	// A second claim on the same slot conflicts while the first holds it
	if !ValidSlot(claimedSlots(claims), "15:00") {
		t.Fatal("expected 15:00 to register as taken before cancellation")
	}

	cancelled, err := Cancel(claims[0].Status)
	if err != nil {
		t.Fatalf("Cancel() = %v", err)
	}
	claims[0].Status = cancelled

	open = Available(BookingSlots, claimedSlots(claims))
	if !reflect.DeepEqual(open, BookingSlots) {
		t.Fatalf("cancelled claim still blocks availability: %v", open)
	}
	if ValidSlot(claimedSlots(claims), "15:00") {
		t.Fatal("cancelled claim still registers as taken")
	}
}
