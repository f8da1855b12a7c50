package warm

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/wilbur182/mcwarm/internal/fdmonitor"
	"github.com/wilbur182/mcwarm/internal/scan"
)

// eventBuffer sizes the session event channel. Sends never block; if
// the consumer falls this far behind, events are dropped.
const eventBuffer = 4096

// Options configures a warm session.
type Options struct {
	Targets   []string // instance directories, processed in order
	Patterns  []string // glob patterns; nil means scan.DefaultPatterns
	Budget    int64    // byte ceiling for the whole session
	ChunkSize int      // per-read size; 0 means DefaultChunkSize
	DryRun    bool     // plan only, read nothing
}

// Session warms one or more instance directories on a single background
// worker. The worker owns the budget counters; the only state shared
// with the caller is the cancellation flag and the event channel.
type Session struct {
	opts    Options
	cancel  atomic.Bool
	started atomic.Bool
	events  chan Event
}

// New creates a session. Call Start to begin warming.
func New(opts Options) *Session {
	if len(opts.Patterns) == 0 {
		opts.Patterns = scan.DefaultPatterns
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	return &Session{
		opts:   opts,
		events: make(chan Event, eventBuffer),
	}
}

// Events returns the progress channel. It is closed by the worker once
// the session finishes; the close is the authoritative completion
// signal since individual events may be dropped under backpressure.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Cancel requests a cooperative stop. No new file is opened after the
// next per-file check; a read already in progress finishes normally.
func (s *Session) Cancel() {
	s.cancel.Store(true)
}

// Cancelled reports whether a stop was requested.
func (s *Session) Cancelled() bool {
	return s.cancel.Load()
}

// Start launches the session worker. Subsequent calls are no-ops.
func (s *Session) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
}

func (s *Session) run() {
	defer close(s.events)

	start := time.Now()
	var total int64

	for _, target := range s.opts.Targets {
		if s.cancel.Load() {
			break
		}
		s.emit(Event{Kind: EventTargetStart, Target: target, Total: total})

		files := Rank(scan.Enumerate(target, s.opts.Patterns))
		count := len(files)
		var warmed int64

		for i, f := range files {
			if s.cancel.Load() {
				break
			}
			index := i + 1

			info, err := os.Stat(f.Path)
			if err != nil {
				// Disappeared or unreadable since enumeration.
				s.emit(Event{Kind: EventFileError, Target: target, Index: index, Count: count, Path: f.Path, Total: total, Err: err})
				continue
			}
			size := info.Size()

			if s.opts.DryRun {
				s.emit(Event{Kind: EventFilePlanned, Target: target, Index: index, Count: count, Path: f.Path, Size: size, Total: total})
				continue
			}
			if total >= s.opts.Budget {
				s.emit(Event{Kind: EventLimitHit, Target: target, Total: total, Budget: s.opts.Budget})
				break
			}

			n, err := WarmFile(f.Path, s.opts.ChunkSize)
			total += n
			warmed += n
			if err != nil {
				slog.Debug("warm failed", "path", f.Path, "read", n, "error", err)
				s.emit(Event{Kind: EventFileError, Target: target, Index: index, Count: count, Path: f.Path, Size: n, Total: total, Err: err})
				continue
			}
			s.emit(Event{Kind: EventFileWarmed, Target: target, Index: index, Count: count, Path: f.Path, Size: n, Total: total})
		}

		s.emit(Event{Kind: EventTargetDone, Target: target, Size: warmed, Total: total})

		// Every file above was opened and closed once; a climbing FD
		// count here means a leaked handle.
		fdmonitor.CheckWithContext(slog.Default(), target)
	}

	s.emit(Event{Kind: EventSessionDone, Total: total, Elapsed: time.Since(start)})
}

// emit hands an event to the consumer without ever blocking the worker.
func (s *Session) emit(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}
