package telemetry

import (
	"fmt"
	"io"
	"sync"

	alice "github.com/ext-sakamoro/alice-search"
)

// Sink is a telemetry bridge callable with the (pattern-length,
// result-count, elapsed) tuples spec'd for the core's external telemetry
// collaborator. StdoutSink is the one concrete implementation this package
// provides; callers may write their own against the same alice.Listener
// interface.
type Sink interface {
	alice.Listener
}

// StdoutSink is a Listener that writes one line per event to an io.Writer,
// grounded on the same writer-plus-mutex shape as app's InfoPrinter.
type StdoutSink struct {
	writer io.Writer
	lock   sync.Mutex
}

// NewStdoutSink returns a Sink that logs every event it receives to w.
func NewStdoutSink(w io.Writer) *StdoutSink {
	return &StdoutSink{writer: w}
}

// ProcessEvent writes evt to the sink's writer.
func (this *StdoutSink) ProcessEvent(evt *alice.Event) {
	this.lock.Lock()
	defer this.lock.Unlock()
	fmt.Fprintln(this.writer, evt)
}
