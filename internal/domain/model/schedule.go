package model

import "time"

// CourseSchedule is the priced, dated offering of a course. Catalog
// management lives elsewhere; this service only reads fee data.
type CourseSchedule struct {
	ID        int64
	CourseID  int64
	Title     string
	Fee       *float64
	Price     *float64
	StartDate time.Time
}

// SeatFee resolves the per-participant fee, preferring the schedule fee,
// then the listed price, then the provided minimum. Never zero or negative.
func (s *CourseSchedule) SeatFee(minimum float64) float64 {
	if s.Fee != nil && *s.Fee > 0 {
		return *s.Fee
	}
	if s.Price != nil && *s.Price > 0 {
		return *s.Price
	}
	return minimum
}
