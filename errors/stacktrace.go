package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is an interface implemented by errors that carry a stack trace
// information. It is privately defined by pkg/errors as well.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the stack trace attached to the given error or to any
// error in its cause chain. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// trimInternal removes from the stack trace information that is internal to
// this package and is of no interest when debugging an application.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	// Manual error creation, or runtime for caught panics.
	for len(st) > 0 && matchesFunc(st[0],
		// where we create errors
		"github.com/guild-net/guild/errors.Wrap",
		"github.com/guild-net/guild/errors.Wrapf",
		"github.com/guild-net/guild/errors.(*Error).New",
		"github.com/guild-net/guild/errors.(*Error).Newf",
		// runtime is added on panics
		"runtime.",
	) {
		st = st[1:]
	}
	// Trim out the outer wrappers, that is the test runner and the
	// goroutine bootstrap.
	for l := len(st) - 1; l > 0 && matchesFunc(st[l], "runtime.", "testing."); l-- {
		st = st[:l]
	}
	return st
}

func matchesFunc(f errors.Frame, prefixes ...string) bool {
	fn := funcName(f)
	for _, prefix := range prefixes {
		if strings.HasPrefix(fn, prefix) {
			return true
		}
	}
	return false
}

// funcName returns the name of this function, if known.
func funcName(f errors.Frame) string {
	// this looks a bit like magic, but follows example here:
	// https://github.com/pkg/errors/blob/v0.8.1/stack.go#L43-L50
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func fileLine(f errors.Frame) (string, int) {
	// this looks a bit like magic, but follows example here:
	// https://github.com/pkg/errors/blob/v0.8.1/stack.go#L14-L27
	// as this misses some off by one issues
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// cut file at "github.com/"
	// this is super fragile, but works well in tests
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}

// Format works like pkg/errors, with additions.
// %s is just the error message
// %+v is the error message followed by the full stack trace
// %v appends a compressed [filename:line] where the error
// was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		io.WriteString(s, e.Error())
		return
	}
	io.WriteString(s, e.Error())
	stack := trimInternal(stackTrace(e))
	if len(stack) == 0 {
		return
	}
	if s.Flag('+') {
		fmt.Fprintf(s, "%+v", stack)
	} else {
		writeSimpleFrame(s, stack[0])
	}
}
