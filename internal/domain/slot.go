package domain

import "time"

// Slot один конкретный интервал времени [Start, End), производный от запроса.
// Recurring запрос раскрывается в несколько слотов с шагом в неделю
type Slot struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the slot overlaps [start, end)
func (s Slot) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(s.Start, s.End, start, end)
}

// Duration returns the slot duration
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IntervalsOverlap reports whether half-open intervals [a0, a1) and [b0, b1)
// overlap. Touching boundaries (a1 == b0 or b1 == a0) do NOT overlap.
func IntervalsOverlap(a0, a1, b0, b1 time.Time) bool {
	return a0.Before(b1) && b0.Before(a1)
}
