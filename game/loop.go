package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/cubejump/systems"
)

// Loop drives a Session at a fixed tick rate without a window. Every tick
// steps the session by exactly 1/tickRate seconds, so runs are deterministic
// for a given input source.
type Loop struct {
	session  *Session
	input    systems.InputSource
	tickRate int
	maxTicks int

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop. maxTicks <= 0 runs until stopped.
func NewLoop(session *Session, input systems.InputSource, tickRate, maxTicks int) *Loop {
	if tickRate <= 0 {
		panic("NewLoop: tick rate must be positive")
	}
	return &Loop{
		session:  session,
		input:    input,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the context is cancelled, Stop is called, the session
// requests quit, or maxTicks have run. Quit and Stop are honoured at the
// next tick boundary.
func (g *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		if done := g.tick(); done {
			log.Println("Game loop stopped")
			return nil
		}

		select {
		case <-ctx.Done():
			log.Println("Game loop cancelled")
			return ctx.Err()
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RunFast steps the session back to back with no pacing. It is for
// simulations and tests that only care about the result.
func (g *Loop) RunFast(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-g.stopChan:
			return nil
		default:
		}
		if g.tick() {
			return nil
		}
	}
}

// Stop ends Run at the next tick boundary. Safe to call more than once.
func (g *Loop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// tick runs one step and reports whether the loop should end.
func (g *Loop) tick() bool {
	if g.session.QuitRequested() {
		return true
	}
	if g.maxTicks > 0 && g.session.Frames() >= g.maxTicks {
		return true
	}
	g.session.Step(1/float64(g.tickRate), g.input)
	return false
}
