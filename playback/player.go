// SPDX-License-Identifier: MIT
// Package playback drives a Stepper on a timer: one StepForward per tick, with
// pause, resume and manual steps that cancel auto-play first.
//
// Concurrency:
//   - Auto-play runs in one goroutine per Play call, bounded by a cancellable context.
//   - A mutex serializes ticks and manual steps, so the cursor is never advanced twice
//     for one logical move.
//   - Observers run on the playback goroutine. They must not call Play, Pause or
//     SetInterval.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mststep/navigator"
)

// DefaultInterval is the auto-play tick period when WithInterval is not given.
const DefaultInterval = time.Second

// ErrInvalidInterval indicates a non-positive tick period.
var ErrInvalidInterval = errors.New("playback: interval must be positive")

// Stepper is what a Player drives. *navigator.Navigator satisfies it.
type Stepper interface {
	StepForward() error
	StepBackward() error
}

// progress is optionally implemented by a Stepper so the Player can stop on the
// last step instead of one tick later.
type progress interface {
	Cursor() int
	Len() int
}

// EventKind classifies playback notifications.
type EventKind int

const (
	// EventStep follows every successful forward or backward step.
	EventStep EventKind = iota
	// EventFinished is sent once when auto-play reaches the end of the log.
	EventFinished
	// EventError is sent when a step fails for a reason other than a boundary.
	EventError
)

// String returns "step", "finished" or "error".
func (k EventKind) String() string {
	switch k {
	case EventStep:
		return "step"
	case EventFinished:
		return "finished"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one playback notification.
type Event struct {
	Kind EventKind
	Err  error
}

// Option configures a Player.
type Option func(p *Player) error

// WithInterval sets the auto-play tick period.
func WithInterval(d time.Duration) Option {
	return func(p *Player) error {
		if d <= 0 {
			return errors.Wrapf(ErrInvalidInterval, "got %s", d)
		}
		p.interval = d

		return nil
	}
}

// WithClock substitutes the tick source.
func WithClock(c Clock) Option {
	return func(p *Player) error {
		p.clock = c

		return nil
	}
}

// WithObserver registers fn for every Event.
func WithObserver(fn func(Event)) Option {
	return func(p *Player) error {
		p.observer = fn

		return nil
	}
}

// Player is the cancellable auto-play task around a Stepper.
type Player struct {
	stepper  Stepper
	clock    Clock
	interval time.Duration
	observer func(Event)

	// step serializes every call into stepper.
	step sync.Mutex

	// mu guards the task handle below.
	mu     sync.Mutex
	parent context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a paused Player.
//
// Error Conditions:
//   - ErrInvalidInterval: WithInterval(d) with d <= 0.
func New(s Stepper, opts ...Option) (*Player, error) {
	p := &Player{
		stepper:  s,
		clock:    RealClock(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Interval returns the current tick period.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.interval
}

// Playing reports whether an auto-play task is active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.activeLocked()
}

// Play starts auto-play. It is a no-op when already playing. The task ends when
// ctx is cancelled, Pause is called, a manual step is taken or the log ends.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.activeLocked() {
		return nil
	}
	p.stopLocked()
	p.startLocked(ctx)

	return nil
}

// Pause cancels auto-play and waits for the task to exit. The cursor is untouched.
func (p *Player) Pause() {
	p.mu.Lock()
	done := p.stopLocked()
	p.mu.Unlock()

	if done != nil {
		<-done
		klog.V(2).Infof("playback: paused")
	}
}

// SetInterval changes the tick period, restarting an active task with it.
func (p *Player) SetInterval(d time.Duration) error {
	if d <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "got %s", d)
	}

	p.mu.Lock()
	active := p.activeLocked()
	parent := p.parent
	done := p.stopLocked()
	p.interval = d
	p.mu.Unlock()

	if done != nil {
		<-done
	}
	if active {
		return p.Play(parent)
	}

	return nil
}

// StepForward cancels auto-play, then advances one step.
func (p *Player) StepForward() error {
	p.Pause()

	return p.manual(p.stepper.StepForward)
}

// StepBackward cancels auto-play, then goes back one step.
func (p *Player) StepBackward() error {
	p.Pause()

	return p.manual(p.stepper.StepBackward)
}

func (p *Player) manual(fn func() error) error {
	p.step.Lock()
	err := fn()
	p.step.Unlock()

	if err == nil {
		p.notify(Event{Kind: EventStep})
	}

	return err
}

// activeLocked reports whether a task exists and has not exited. p.mu must be held.
func (p *Player) activeLocked() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// startLocked launches the tick loop. p.mu must be held.
func (p *Player) startLocked(parent context.Context) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	p.parent, p.cancel, p.done = parent, cancel, done

	ticker := p.clock.NewTicker(p.interval)
	klog.V(2).Infof("playback: playing every %s", p.interval)

	go func() {
		defer close(done)
		defer cancel()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				if finished := p.tick(ctx); finished {
					return
				}
			}
		}
	}()
}

// stopLocked cancels the task and returns its done channel, or nil. p.mu must be held.
func (p *Player) stopLocked() chan struct{} {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	done := p.done
	p.cancel, p.done = nil, nil

	return done
}

// tick performs one auto-play step and reports whether the task should end.
func (p *Player) tick(ctx context.Context) bool {
	p.step.Lock()
	if ctx.Err() != nil {
		// A manual step won the race; it owns this move.
		p.step.Unlock()
		return true
	}
	err := p.stepper.StepForward()
	atEnd := false
	if pr, ok := p.stepper.(progress); ok && err == nil {
		atEnd = pr.Cursor() >= pr.Len()
	}
	p.step.Unlock()

	switch {
	case errors.Is(err, navigator.ErrNavigationBoundary):
		p.notify(Event{Kind: EventFinished})
		klog.V(2).Infof("playback: finished")
		return true
	case err != nil:
		klog.Warningf("playback: step failed: %v", err)
		p.notify(Event{Kind: EventError, Err: err})
		return true
	}

	p.notify(Event{Kind: EventStep})
	if atEnd {
		p.notify(Event{Kind: EventFinished})
		klog.V(2).Infof("playback: finished")
		return true
	}

	return false
}

func (p *Player) notify(e Event) {
	if p.observer != nil {
		p.observer(e)
	}
}
