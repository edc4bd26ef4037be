package panel

import (
	"time"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

const defaultToastBuffer = 8

// ToastQueue hands toasts to the panel. When the panel falls behind, the
// oldest queued toast is dropped.
type ToastQueue struct {
	ch chan domain.Toast
}

var _ ports.Notifier = (*ToastQueue)(nil)

func NewToastQueue(size int) *ToastQueue {
	if size <= 0 {
		size = defaultToastBuffer
	}

	return &ToastQueue{ch: make(chan domain.Toast, size)}
}

func (q *ToastQueue) ShowToast(toast domain.Toast) {
	for {
		select {
		case q.ch <- toast:
			return
		default:
		}

		select {
		case <-q.ch:
		default:
		}
	}
}

func (q *ToastQueue) Toasts() <-chan domain.Toast {
	return q.ch
}

// FixedTimeRange is a time range chosen once at startup.
type FixedTimeRange domain.TimeRange

var _ ports.TimeRangeSource = FixedTimeRange{}

func (r FixedTimeRange) TimeRange() domain.TimeRange {
	return domain.TimeRange(r)
}

// ParseTimeRange reads a duration such as "30m" or "24h". An empty value
// yields the default range.
func ParseTimeRange(raw string) (FixedTimeRange, error) {
	if raw == "" {
		return FixedTimeRange{}, nil
	}

	duration, err := time.ParseDuration(raw)
	if err != nil {
		return FixedTimeRange{}, err
	}

	return FixedTimeRange{Duration: duration}, nil
}
