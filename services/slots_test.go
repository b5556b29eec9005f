package services

import (
	"reflect"
	"testing"
	"time"
)

func TestAvailableIsCatalogMinusTaken(t *testing.T) {
	catalog := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

	got := Available(catalog, []string{"11:00"})
	want := []string{"09:00", "10:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}

	// Nothing taken returns the full catalog in order
	if got := Available(catalog, nil); !reflect.DeepEqual(got, catalog) {
		t.Fatalf("Available() with nothing taken = %v, want full catalog", got)
	}

	// Everything taken returns an empty, non-nil slice
	if got := Available(catalog, catalog); len(got) != 0 {
		t.Fatalf("Available() with everything taken = %v, want empty", got)
	}
}

func TestAvailableIgnoresUnknownTakenLabels(t *testing.T) {
	got := Available(BookingSlots, []string{"08:00", "23:30"})
	if !reflect.DeepEqual(got, BookingSlots) {
		t.Fatalf("Available() = %v, want untouched catalog", got)
	}
}

func TestAvailablePreservesCatalogOrder(t *testing.T) {
	got := Available(BookingSlots, []string{"16:30", "15:00", "19:00"})
	want := []string{"15:30", "16:00", "17:00", "17:30", "18:00", "18:30", "19:30", "20:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
}

func TestFilterPastSlotsToday(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	got := FilterPastSlots(ServiceSlots, now, now)
	want := []string{"13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterPastSlots(today) = %v, want %v", got, want)
	}
}

func TestFilterPastSlotsOtherDayUntouched(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	if got := FilterPastSlots(ServiceSlots, tomorrow, now); !reflect.DeepEqual(got, ServiceSlots) {
		t.Fatalf("FilterPastSlots(tomorrow) = %v, want full catalog", got)
	}
}

func TestValidSlot(t *testing.T) {
	if !ValidSlot(BookingSlots, "15:30") {
		t.Fatal("expected 15:30 to be a valid booking slot")
	}
	if ValidSlot(BookingSlots, "09:00") {
		t.Fatal("09:00 is a service slot, not a booking slot")
	}
	if ValidSlot(ServiceSlots, "17:30") {
		t.Fatal("17:30 is not in the hourly service catalog")
	}
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2024, 6, 1, 18, 45, 12, 999, time.UTC)
	got := Midnight(ts)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Midnight() = %v, want %v", got, want)
	}
}

func TestMidnightSameCalendarDayAcrossOffsets(t *testing.T) {
	// The same calendar day must land on one stored instant no matter what
	// UTC offset the client sent, or two bookings for one day/slot slip past
	// the conflict check.
	utc := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	offset := time.Date(2024, 6, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))

	if !Midnight(utc).Equal(Midnight(offset)) {
		t.Fatalf("same calendar day normalized to different instants: %v vs %v",
			Midnight(utc), Midnight(offset))
	}

	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !Midnight(offset).Equal(want) {
		t.Fatalf("Midnight() = %v, want %v", Midnight(offset), want)
	}
}
