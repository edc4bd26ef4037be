package ports

import "time"

type LoadOutcome string

const (
	LoadOutcomeOK    LoadOutcome = "ok"
	LoadOutcomeError LoadOutcome = "error"
	LoadOutcomeStale LoadOutcome = "stale"
)

// LoadObserver records board collection load outcomes.
type LoadObserver interface {
	ObserveBoardLoad(outcome LoadOutcome, elapsed time.Duration)
}

type NopLoadObserver struct{}

func (NopLoadObserver) ObserveBoardLoad(LoadOutcome, time.Duration) {}
