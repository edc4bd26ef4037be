// Package notify raises toasts where no interactive surface exists.
package notify

import (
	"context"
	"log/slog"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

// LogNotifier writes each toast as a log record. Critical toasts are errors.
type LogNotifier struct {
	log *slog.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &LogNotifier{log: log}
}

func (n *LogNotifier) ShowToast(toast domain.Toast) {
	level := slog.LevelInfo
	if toast.Severity == domain.ToastCritical {
		level = slog.LevelError
	}

	n.log.Log(context.Background(), level, toast.Title, "description", toast.Description, "severity", string(toast.Severity))
}
