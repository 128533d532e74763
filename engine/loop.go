package engine

import (
	"context"
	"time"
)

// EventSource supplies the input edges gathered since the previous tick.
// Implemented by the input collaborator (keyboard, GPIO poller, controller).
type EventSource interface {
	PollEvents(dst []Event) []Event
}

// ViewSink receives the projected view model at the end of each tick. The
// model is owned by the loop and only valid until the next tick.
type ViewSink interface {
	Present(vm *ViewModel)
}

// LoopStats provides statistics about tick execution.
type LoopStats struct {
	TickCount     int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Loop drives the fixed-period pipeline: input sampling, intent application,
// timing update, render projection, handoff to the display. Every stage
// completes within the tick; nothing blocks or suspends mid-tick.
type Loop struct {
	session *Session
	mapper  *Mapper
	source  EventSource
	sink    ViewSink
	reseed  func() uint64

	events  []Event
	intents []Intent
	vm      ViewModel

	tickCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

// NewLoop wires a session to its collaborators. reseed chooses the seed for a
// reset intent; if nil, reset intents are dropped and restarting is left to
// whoever owns the session.
func NewLoop(session *Session, mapper *Mapper, source EventSource, sink ViewSink, reseed func() uint64) *Loop {
	return &Loop{
		session: session,
		mapper:  mapper,
		source:  source,
		sink:    sink,
		reseed:  reseed,
		events:  make([]Event, 0, 16),
		intents: make([]Intent, 0, 16),

		minDuration: time.Duration(1<<63 - 1),
	}
}

// Tick runs one frame of the pipeline.
func (l *Loop) Tick() {
	start := time.Now()

	l.events = l.source.PollEvents(l.events[:0])
	for _, ev := range l.events {
		l.mapper.Handle(ev)
	}

	l.intents = l.mapper.Tick(l.intents[:0])
	for _, in := range l.intents {
		if in == InputReset {
			if l.reseed != nil {
				l.session.Reset(l.reseed())
				l.mapper.Reset()
			}
			continue
		}
		l.session.Apply(in)
	}

	l.session.Tick()
	Project(l.session, &l.vm)
	l.sink.Present(&l.vm)

	duration := time.Since(start)
	l.tickCount++
	l.lastDuration = duration
	l.totalDuration += duration
	if duration < l.minDuration {
		l.minDuration = duration
	}
	if duration > l.maxDuration {
		l.maxDuration = duration
	}
}

// Run executes ticks at the given interval until the context is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Stats returns statistics about tick execution.
func (l *Loop) Stats() LoopStats {
	stats := LoopStats{
		TickCount:     l.tickCount,
		MinDuration:   l.minDuration,
		MaxDuration:   l.maxDuration,
		LastDuration:  l.lastDuration,
		TotalDuration: l.totalDuration,
	}
	if l.tickCount > 0 {
		stats.AvgDuration = l.totalDuration / time.Duration(l.tickCount)
	}
	return stats
}

// Session returns the loop's session.
func (l *Loop) Session() *Session { return l.session }
