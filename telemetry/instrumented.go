// Package telemetry is the shell-side bridge that invokes the Event/Listener
// machinery the core declares but never calls itself. Instrumented wraps a
// built fmindex.Index, times every query from the outside and notifies its
// listeners the way app/BlockCompressor notifies its own — the core stays a
// pure, infallible, listener-free query surface.
package telemetry

import (
	"time"

	alice "github.com/ext-sakamoro/alice-search"
	"github.com/ext-sakamoro/alice-search/fmindex"
)

// Instrumented wraps a *fmindex.Index, forwarding every query to it while
// timing the call and notifying registered listeners with the resulting
// Event.
type Instrumented struct {
	idx       *fmindex.Index
	listeners []alice.Listener
}

// Wrap returns an Instrumented view over an already-built index. idx itself
// is untouched — Instrumented never mutates it and owns no part of it.
func Wrap(idx *fmindex.Index) *Instrumented {
	return &Instrumented{idx: idx}
}

// AddListener adds an event listener. Returns true if it was added.
func (this *Instrumented) AddListener(l alice.Listener) bool {
	if l == nil {
		return false
	}

	this.listeners = append(this.listeners, l)
	return true
}

// RemoveListener removes an event listener. Returns true if it was removed.
func (this *Instrumented) RemoveListener(l alice.Listener) bool {
	for i, e := range this.listeners {
		if e == l {
			this.listeners = append(this.listeners[:i], this.listeners[i+1:]...)
			return true
		}
	}

	return false
}

func (this *Instrumented) notify(evtType, patternLen, resultCount int, elapsed time.Duration) {
	if len(this.listeners) == 0 {
		return
	}

	evt := alice.NewEvent(evtType, patternLen, resultCount, elapsed, time.Time{})
	notifyListeners(this.listeners, evt)
}

func notifyListeners(listeners []alice.Listener, evt *alice.Event) {
	defer func() {
		//lint:ignore SA9003 Ignore panics in listeners
		// nolint:staticcheck
		if r := recover(); r != nil {
		}
	}()

	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}

// Count times and forwards Count to the wrapped index.
func (this *Instrumented) Count(pattern []byte) int {
	start := time.Now()
	n := this.idx.Count(pattern)
	this.notify(alice.EVT_COUNT, len(pattern), n, time.Since(start))
	return n
}

// Contains times and forwards Contains to the wrapped index.
func (this *Instrumented) Contains(pattern []byte) bool {
	start := time.Now()
	found := this.idx.Contains(pattern)
	result := 0

	if found {
		result = 1
	}

	this.notify(alice.EVT_COUNT, len(pattern), result, time.Since(start))
	return found
}

// SearchRange forwards to the wrapped index without timing — it is a pure
// sub-step of Count/Contains/Locate, not a user-facing query in its own
// right.
func (this *Instrumented) SearchRange(pattern []byte) (int, int) {
	return this.idx.SearchRange(pattern)
}

// Locate times setup and forwards Locate to the wrapped index. Only the
// cursor's construction is timed; iterating it happens outside this call.
func (this *Instrumented) Locate(pattern []byte) *fmindex.LocateIter {
	start := time.Now()
	it := this.idx.Locate(pattern)
	this.notify(alice.EVT_LOCATE, len(pattern), it.Remaining(), time.Since(start))
	return it
}

// LocateAll times and forwards LocateAll to the wrapped index.
func (this *Instrumented) LocateAll(pattern []byte) []int {
	start := time.Now()
	positions := this.idx.LocateAll(pattern)
	this.notify(alice.EVT_LOCATE, len(pattern), len(positions), time.Since(start))
	return positions
}

// SizeBytes forwards to the wrapped index.
func (this *Instrumented) SizeBytes() int {
	return this.idx.SizeBytes()
}

// TextLen forwards to the wrapped index.
func (this *Instrumented) TextLen() int {
	return this.idx.TextLen()
}

// CompressionRatio forwards to the wrapped index.
func (this *Instrumented) CompressionRatio() float64 {
	return this.idx.CompressionRatio()
}
