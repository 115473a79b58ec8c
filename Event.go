/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package alice

import (
	"fmt"
	"time"
)

const (
	EVT_BUILD_START = 0 // Index build starts
	EVT_BUILD_END   = 1 // Index build ends
	EVT_COUNT       = 2 // A count/contains query completed
	EVT_LOCATE      = 3 // A locate/locate_all query completed
)

// Event describes a single build or query lifecycle step: its type, the
// pattern length involved (unused for build events), the number of results
// produced, and how long the step took. fmindex.Index itself never
// constructs or fires one of these — the core is a pure query surface;
// telemetry.Instrumented is the shell-side wrapper that does.
type Event struct {
	eventType   int
	patternLen  int
	resultCount int
	elapsed     time.Duration
	eventTime   time.Time
	msg         string
}

// NewEventFromString creates a new Event instance that wraps a message.
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// NewEvent creates a new Event instance describing a completed query step.
func NewEvent(evtType, patternLen, resultCount int, elapsed time.Duration, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, patternLen: patternLen, resultCount: resultCount,
		elapsed: elapsed, eventTime: evtTime}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// Time returns the time the event was recorded.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// PatternLen returns the length of the pattern the query step was run with.
func (this *Event) PatternLen() int {
	return this.patternLen
}

// ResultCount returns the number of results the query step produced.
func (this *Event) ResultCount() int {
	return this.resultCount
}

// Elapsed returns how long the step took.
func (this *Event) Elapsed() time.Duration {
	return this.elapsed
}

// String returns a string representation of this event. If the event wraps
// a message, the message is returned; otherwise a string is built from the
// fields.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EVT_BUILD_START:
		t = "BUILD_START"

	case EVT_BUILD_END:
		t = "BUILD_END"

	case EVT_COUNT:
		t = "COUNT"

	case EVT_LOCATE:
		t = "LOCATE"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"patternLen\":%d, \"resultCount\":%d, \"elapsedUs\":%d, \"time\":%d }",
		t, this.patternLen, this.resultCount, this.elapsed.Microseconds(), this.eventTime.UnixNano()/1000000)
}

// Listener is an interface implemented by event processors.
type Listener interface {
	// ProcessEvent is the method called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}
