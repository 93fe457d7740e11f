package domain

import "time"

// ReportWindow is a half-open reporting interval [From, To).
type ReportWindow struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w ReportWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// CycleTime is the mean time from genesis to the first terminal transition
// over the requests that finished.
type CycleTime struct {
	Requests   int
	AvgSeconds float64
}

// Days is the whole-day part of the mean.
func (c CycleTime) Days() int64 {
	return c.totalHours() / 24
}

// Hours is the hour-of-day remainder of the mean, 0..23.
func (c CycleTime) Hours() int64 {
	return c.totalHours() % 24
}

func (c CycleTime) totalHours() int64 {
	return int64(c.AvgSeconds / 3600)
}

// ReworkStats counts requests sent back for changes.
type ReworkStats struct {
	ReworkCount int
	TotalCount  int
}

// Percentage is 100 × rework/total, unrounded, and 0 for an empty window.
func (r ReworkStats) Percentage() float64 {
	if r.TotalCount == 0 {
		return 0
	}
	return float64(r.ReworkCount) / float64(r.TotalCount) * 100
}

// StatusCount is one row of the requests-by-status report.
type StatusCount struct {
	Status RequestStatus
	Total  int
}
