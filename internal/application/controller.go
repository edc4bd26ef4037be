package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/google/uuid"
)

const eventBuffer = 16

var ErrControllerStopped = errors.New("panel controller stopped")

// Controller owns the session of one panel instance. A single loop goroutine
// applies events through Reduce in arrival order; remote calls run on their
// own goroutines and post their completions back to the loop.
type Controller struct {
	id       string
	identity *IdentityResolver
	accounts *AccountRegistry
	boards   *BoardStore
	notifier ports.Notifier
	observer ports.LoadObserver
	log      *slog.Logger

	events  chan Event
	done    chan struct{}
	start   sync.Once
	started atomic.Bool

	mu    sync.RWMutex
	state State

	subsMu sync.Mutex
	subs   []chan State
}

type Option func(*Controller)

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

func WithLoadObserver(observer ports.LoadObserver) Option {
	return func(c *Controller) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// NewController builds an idle controller. Entry points called before Start
// queue up to the event buffer and are applied once the loop runs; anything
// beyond that is dropped.
func NewController(identity *IdentityResolver, accounts *AccountRegistry, boards *BoardStore, notifier ports.Notifier, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		identity: identity,
		accounts: accounts,
		boards:   boards,
		notifier: notifier,
		observer: ports.NopLoadObserver{},
		log:      orDiscard(nil),
		events:   make(chan Event, eventBuffer),
		done:     make(chan struct{}),
		state:    NewState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("panel", c.id)

	return c
}

func (c *Controller) ID() string {
	return c.id
}

// Start runs the event loop until ctx is done and issues the identity and
// account queries. Calling it again has no effect.
func (c *Controller) Start(ctx context.Context) {
	c.start.Do(func() {
		c.started.Store(true)
		go c.run(ctx)
		go c.post(ctx, c.identity.Resolve)
		go c.post(ctx, c.accounts.Fetch)
	})
}

// Done is closed once the event loop has stopped.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// SelectAccount switches to account when its name is among the fetched accounts.
func (c *Controller) SelectAccount(account domain.Account) {
	c.dispatch(AccountSelected{Account: account})
}

func (c *Controller) OpenBoard(key string) {
	c.dispatch(BoardOpened{Key: key})
}

// CloseBoard returns to the list. A nil replacement keeps the current boards.
func (c *Controller) CloseBoard(replacement domain.BoardCollection) {
	c.dispatch(BoardClosed{Replacement: replacement.Clone()})
}

// UpdateBoards replaces the boards while keeping the open board.
func (c *Controller) UpdateBoards(boards domain.BoardCollection) {
	c.dispatch(BoardsReplaced{Boards: boards.Clone()})
}

// ReplaceBoards overwrites the boards with a collection produced elsewhere.
func (c *Controller) ReplaceBoards(boards domain.BoardCollection) {
	c.dispatch(BoardsReplaced{Boards: boards.Clone()})
}

// SaveBoards persists boards for the selected account.
func (c *Controller) SaveBoards(ctx context.Context, boards domain.BoardCollection) error {
	return c.boards.Save(ctx, c.Snapshot().AccountID(), boards)
}

func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.Clone()
}

// Subscribe returns a channel holding the latest snapshot. Slow readers skip
// intermediate states but always see the newest one.
func (c *Controller) Subscribe() <-chan State {
	ch, _ := c.subscribe()
	return ch
}

func (c *Controller) subscribe() (chan State, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	ch := make(chan State, 1)
	ch <- c.Snapshot()
	c.subs = append(c.subs, ch)

	return ch, func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		for i, sub := range c.subs {
			if sub == ch {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// WaitFor blocks until a snapshot satisfies ready, ctx ends, or the loop stops.
func (c *Controller) WaitFor(ctx context.Context, ready func(State) bool) (State, error) {
	updates, unsubscribe := c.subscribe()
	defer unsubscribe()

	for {
		select {
		case state := <-updates:
			if ready(state) {
				return state, nil
			}
		case <-ctx.Done():
			return c.Snapshot(), ctx.Err()
		case <-c.done:
			return c.Snapshot(), ErrControllerStopped
		}
	}
}

func (c *Controller) dispatch(ev Event) {
	if !c.started.Load() {
		select {
		case c.events <- ev:
		default:
			c.log.Debug("dropped event before start", "event", fmt.Sprintf("%T", ev))
		}
		return
	}

	select {
	case c.events <- ev:
	case <-c.done:
	}
}

func (c *Controller) post(ctx context.Context, fetch func(context.Context) Event) {
	if ev := fetch(ctx); ev != nil {
		c.dispatch(ev)
	}
}

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.events:
			c.apply(ctx, ev)
		}
	}
}

func (c *Controller) apply(ctx context.Context, ev Event) {
	c.mu.Lock()
	next, effects := Reduce(c.state, ev)
	c.state = next
	c.mu.Unlock()

	c.observe(ev, effects)

	for _, effect := range effects {
		switch effect := effect.(type) {
		case LoadBoards:
			c.log.Debug("loading boards", "account_id", effect.AccountID, "seq", effect.Seq)
			go c.post(ctx, func(ctx context.Context) Event {
				return c.boards.Load(ctx, effect)
			})
		case Notify:
			c.notifier.ShowToast(effect.Toast)
		case LoadDiscarded:
			c.log.Debug("discarded stale board load", "account_id", effect.AccountID, "seq", effect.Seq, "failed", effect.Failed)
		}
	}

	c.publish(next.Clone())
}

func (c *Controller) observe(ev Event, effects []Effect) {
	stale := false
	for _, effect := range effects {
		if _, ok := effect.(LoadDiscarded); ok {
			stale = true
		}
	}

	switch ev := ev.(type) {
	case BoardsLoaded:
		if stale {
			c.observer.ObserveBoardLoad(ports.LoadOutcomeStale, ev.Elapsed)
			return
		}
		c.observer.ObserveBoardLoad(ports.LoadOutcomeOK, ev.Elapsed)
	case BoardsLoadFailed:
		if stale {
			c.observer.ObserveBoardLoad(ports.LoadOutcomeStale, ev.Elapsed)
			return
		}
		c.log.Warn("board load failed", "account_id", ev.AccountID, "error", ev.Err)
		c.observer.ObserveBoardLoad(ports.LoadOutcomeError, ev.Elapsed)
	}
}

func (c *Controller) publish(state State) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}
