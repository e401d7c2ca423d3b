package schedule

import (
	"strings"

	"beautyconnect/models"
)

// WindowsForWeekday filters a pro's availability template down to the ranges
// for one weekday. The day match is case-insensitive, only enabled entries
// count, and duplicate entries for the same weekday are aggregated.
func WindowsForWeekday(availability []models.AvailabilityWindow, weekday string) []models.TimeRange {
	var ranges []models.TimeRange
	for _, w := range availability {
		if !w.Enabled {
			continue
		}
		if !strings.EqualFold(w.Day, weekday) {
			continue
		}
		ranges = append(ranges, w.Slots...)
	}
	return ranges
}

// GenerateSlots expands availability windows into discrete start times spaced
// by durationMinutes. A slot is emitted only when it fits entirely inside its
// window (slot end ≤ window end); consecutive slots within a window never
// overlap. Windows whose bounds fail the "HH:MM" shape are skipped rather
// than failing the whole request. Duplicate times arising from overlapping
// windows are dropped, keeping the first occurrence.
func GenerateSlots(windows []models.TimeRange, durationMinutes int) []string {
	if durationMinutes <= 0 {
		return nil
	}

	var slots []string
	seen := make(map[string]struct{})
	for _, w := range windows {
		start, err := ParseTime(w.Start)
		if err != nil {
			continue
		}
		end, err := ParseTime(w.End)
		if err != nil {
			continue
		}

		endMin := end.Minutes()
		for cur := start.Minutes(); cur+durationMinutes <= endMin; cur += durationMinutes {
			s := minutesToClock(cur)
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			slots = append(slots, s)
		}
	}
	return slots
}

// SubtractReserved returns the candidate slots minus exact-string matches on
// the reserved times.
func SubtractReserved(slots []string, reserved []string) []string {
	if len(reserved) == 0 {
		return slots
	}
	taken := make(map[string]struct{}, len(reserved))
	for _, r := range reserved {
		taken[r] = struct{}{}
	}
	var free []string
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
