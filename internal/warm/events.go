package warm

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// EventKind identifies the kind of session event.
type EventKind string

const (
	EventTargetStart EventKind = "target_start"
	EventFilePlanned EventKind = "file_planned"
	EventFileWarmed  EventKind = "file_warmed"
	EventFileError   EventKind = "file_error"
	EventLimitHit    EventKind = "limit_hit"
	EventTargetDone  EventKind = "target_done"
	EventSessionDone EventKind = "session_done"
)

// Event reports session progress. Index and Count are 1-based ordinal
// and total file count within the current target; Size is the file
// size for planned files and the bytes actually read for warmed ones;
// Total is the running session-wide warmed byte count.
type Event struct {
	Kind    EventKind
	Target  string
	Index   int
	Count   int
	Path    string
	Size    int64
	Total   int64
	Budget  int64
	Err     error
	Elapsed time.Duration
}

// Ratio is the completion fraction within the current target, or -1
// when the event carries no positional information.
func (e Event) Ratio() float64 {
	if e.Count <= 0 {
		return -1
	}
	return float64(e.Index) / float64(e.Count)
}

// Line renders the event as a log line.
func (e Event) Line() string {
	switch e.Kind {
	case EventTargetStart:
		return fmt.Sprintf("Start %s", e.Target)
	case EventFilePlanned:
		return fmt.Sprintf("[%5d/%d] plan %s %s", e.Index, e.Count, e.Path, humanize.IBytes(uint64(e.Size)))
	case EventFileWarmed:
		return fmt.Sprintf("[%5d] warmed %s %s  total %s", e.Index, e.Path, humanize.IBytes(uint64(e.Size)), humanize.IBytes(uint64(e.Total)))
	case EventFileError:
		return fmt.Sprintf("[%5d] error %s: %v", e.Index, e.Path, e.Err)
	case EventLimitHit:
		return fmt.Sprintf("Hit limit %g GB. Stopping.", float64(e.Budget)/(1<<30))
	case EventTargetDone:
		return fmt.Sprintf("Done %s warmed %s", e.Target, humanize.IBytes(uint64(e.Size)))
	case EventSessionDone:
		return fmt.Sprintf("All done in %.1fs. Total warmed %s", e.Elapsed.Seconds(), humanize.IBytes(uint64(e.Total)))
	}
	return ""
}
