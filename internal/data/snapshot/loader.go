package snapshot

import (
	"fmt"
	"os"
	"sync"

	"github.com/penwyp/go-perf-waterfall/internal/core/model"
	"github.com/penwyp/go-perf-waterfall/internal/core/timeline"
	"github.com/penwyp/go-perf-waterfall/internal/data/parser"
	"github.com/penwyp/go-perf-waterfall/internal/util"
)

// ChangeReason explains why a load produced a new timeline set
type ChangeReason int

const (
	ReasonNone ChangeReason = iota
	ReasonFirstLoad
	ReasonSize
	ReasonModTime
	ReasonContent
)

func (r ChangeReason) String() string {
	switch r {
	case ReasonNone:
		return "unchanged"
	case ReasonFirstLoad:
		return "first load"
	case ReasonSize:
		return "size changed"
	case ReasonModTime:
		return "modtime changed"
	case ReasonContent:
		return "content changed"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of one Load call
type LoadResult struct {
	Set     *model.TimelineSet
	Changed bool
	Reason  ChangeReason
}

// Loader reads a snapshot file and rebuilds its timeline set only when the
// file actually changed. A touched file with identical content keeps the
// previous set.
type Loader struct {
	path    string
	builder *timeline.TimelineBuilder

	mu          sync.Mutex
	info        *util.FileInfo
	fingerprint string
	current     *model.TimelineSet
}

// NewLoader creates a loader for path using builder to assemble timelines
func NewLoader(path string, builder *timeline.TimelineBuilder) *Loader {
	if builder == nil {
		builder = timeline.NewTimelineBuilder(nil)
	}
	return &Loader{
		path:    util.ExpandPath(path),
		builder: builder,
	}
}

// Path returns the absolute snapshot path
func (l *Loader) Path() string {
	return l.path
}

// Current returns the last successfully built set, or nil
func (l *Loader) Current() *model.TimelineSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Load checks the file and rebuilds when it changed. On error the previous
// set stays current and the next Load retries.
func (l *Loader) Load() (LoadResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := util.GetFileInfo(l.path)
	if err != nil {
		return LoadResult{Set: l.current}, fmt.Errorf("failed to stat snapshot: %w", err)
	}

	reason := l.changeReason(info)
	if reason == ReasonNone {
		return LoadResult{Set: l.current, Reason: ReasonNone}, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return LoadResult{Set: l.current}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	fingerprint := util.FingerprintBytes(data)
	if l.current != nil && fingerprint == l.fingerprint {
		util.LogDebug("Snapshot touched but content unchanged", util.F("path", l.path), util.F("reason", reason.String()))
		l.info = info
		return LoadResult{Set: l.current, Reason: ReasonNone}, nil
	}
	if l.current != nil {
		reason = ReasonContent
	}

	raw, err := parser.ParseSnapshot(data)
	if err != nil {
		return LoadResult{Set: l.current}, err
	}
	set, err := l.builder.Build(raw)
	if err != nil {
		return LoadResult{Set: l.current}, err
	}

	l.info = info
	l.fingerprint = fingerprint
	l.current = set

	util.LogInfo("Snapshot loaded",
		util.F("path", l.path),
		util.F("reason", reason.String()),
		util.F("timelines", set.Len()),
		util.F("max", set.MaxValue))
	return LoadResult{Set: set, Changed: true, Reason: reason}, nil
}

func (l *Loader) changeReason(info *util.FileInfo) ChangeReason {
	switch {
	case l.current == nil || l.info == nil:
		return ReasonFirstLoad
	case info.Size != l.info.Size:
		return ReasonSize
	case info.ModTime != l.info.ModTime:
		return ReasonModTime
	default:
		return ReasonNone
	}
}
