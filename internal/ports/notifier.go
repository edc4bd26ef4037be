package ports

import "github.com/bnema/neon-boards/internal/domain"

// Notifier raises a user-visible toast. Calls must not block.
type Notifier interface {
	ShowToast(toast domain.Toast)
}

type TimeRangeSource interface {
	TimeRange() domain.TimeRange
}
