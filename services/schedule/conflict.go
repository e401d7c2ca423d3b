package schedule

import "beautyconnect/models"

// ContainsTime reports whether the proposed time falls within [start, end) of
// at least one window. This is a plain boundary check: a proposed time does
// not have to align to a duration-sized grid. Windows with malformed bounds
// are skipped.
func ContainsTime(windows []models.TimeRange, proposed string) bool {
	t, err := ParseTime(proposed)
	if err != nil {
		return false
	}
	tm := t.Minutes()
	for _, w := range windows {
		start, err := ParseTime(w.Start)
		if err != nil {
			continue
		}
		end, err := ParseTime(w.End)
		if err != nil {
			continue
		}
		if start.Minutes() <= tm && tm < end.Minutes() {
			return true
		}
	}
	return false
}
