package domain

import "time"

type ToastSeverity string

const (
	ToastNormal   ToastSeverity = "normal"
	ToastCritical ToastSeverity = "critical"
)

type Toast struct {
	Title       string
	Description string
	Severity    ToastSeverity
}

// TimeRange is the platform-selected time window handed to the board view as-is.
type TimeRange struct {
	BeginTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Label renders the range the way the panel header shows it.
func (r TimeRange) Label() string {
	if !r.BeginTime.IsZero() && !r.EndTime.IsZero() {
		return r.BeginTime.Format(time.RFC3339) + " - " + r.EndTime.Format(time.RFC3339)
	}
	if r.Duration > 0 {
		return "last " + r.Duration.String()
	}

	return "default"
}
