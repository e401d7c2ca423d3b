package schedule

import (
	"reflect"
	"testing"

	"beautyconnect/models"
)

func TestGenerateSlots_Basic(t *testing.T) {
	windows := []models.TimeRange{{Start: "10:00", End: "12:00"}}

	got := GenerateSlots(windows, 60)
	want := []string{"10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots = %v, want %v", got, want)
	}

	// Deterministic for fixed inputs.
	again := GenerateSlots(windows, 60)
	if !reflect.DeepEqual(again, got) {
		t.Fatalf("second run = %v, want %v", again, got)
	}
}

func TestGenerateSlots_NoTrailingPartialSlot(t *testing.T) {
	// 10:00-11:30 with 60-minute duration: 10:30+60 would overrun the window.
	got := GenerateSlots([]models.TimeRange{{Start: "10:00", End: "11:30"}}, 60)
	want := []string{"10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots = %v, want %v", got, want)
	}
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	if got := GenerateSlots([]models.TimeRange{{Start: "10:00", End: "10:45"}}, 60); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestGenerateSlots_NoWindows(t *testing.T) {
	if got := GenerateSlots(nil, 30); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestGenerateSlots_SkipsMalformedWindow(t *testing.T) {
	windows := []models.TimeRange{
		{Start: "9:00", End: "12:00"}, // bad shape, skipped
		{Start: "14:00", End: "15:00"},
	}
	got := GenerateSlots(windows, 30)
	want := []string{"14:00", "14:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots = %v, want %v", got, want)
	}
}

func TestGenerateSlots_DeduplicatesOverlappingWindows(t *testing.T) {
	windows := []models.TimeRange{
		{Start: "10:00", End: "11:00"},
		{Start: "10:00", End: "12:00"},
	}
	got := GenerateSlots(windows, 30)
	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots = %v, want %v", got, want)
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	windows := []models.TimeRange{{Start: "10:00", End: "12:00"}}
	if got := GenerateSlots(windows, 0); got != nil {
		t.Fatalf("expected nil for zero duration, got %v", got)
	}
	if got := GenerateSlots(windows, -15); got != nil {
		t.Fatalf("expected nil for negative duration, got %v", got)
	}
}

func TestSubtractReserved(t *testing.T) {
	generated := GenerateSlots([]models.TimeRange{{Start: "10:00", End: "12:00"}}, 60)
	got := SubtractReserved(generated, []string{"10:00"})
	want := []string{"11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SubtractReserved = %v, want %v", got, want)
	}

	// Reserved times that were never generated change nothing.
	got = SubtractReserved(generated, []string{"09:00", "13:00"})
	if !reflect.DeepEqual(got, generated) {
		t.Fatalf("SubtractReserved = %v, want %v", got, generated)
	}
}

func TestWindowsForWeekday(t *testing.T) {
	availability := []models.AvailabilityWindow{
		{Day: "Saturday", Enabled: true, Slots: []models.TimeRange{{Start: "10:00", End: "12:00"}}},
		{Day: "saturday", Enabled: true, Slots: []models.TimeRange{{Start: "14:00", End: "16:00"}}},
		{Day: "saturday", Enabled: false, Slots: []models.TimeRange{{Start: "18:00", End: "20:00"}}},
		{Day: "sunday", Enabled: true, Slots: []models.TimeRange{{Start: "08:00", End: "10:00"}}},
	}

	got := WindowsForWeekday(availability, "saturday")
	want := []models.TimeRange{{Start: "10:00", End: "12:00"}, {Start: "14:00", End: "16:00"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WindowsForWeekday = %v, want %v", got, want)
	}
}

func TestContainsTime_HalfOpenBounds(t *testing.T) {
	windows := []models.TimeRange{{Start: "10:00", End: "12:00"}}

	cases := []struct {
		time string
		want bool
	}{
		{"10:00", true},  // inclusive start
		{"11:59", true},  // off-grid times are fine in this path
		{"12:00", false}, // exclusive end
		{"09:59", false},
		{"12:01", false},
		{"bogus", false},
	}
	for _, tc := range cases {
		if got := ContainsTime(windows, tc.time); got != tc.want {
			t.Fatalf("ContainsTime(%q) = %v, want %v", tc.time, got, tc.want)
		}
	}
}
