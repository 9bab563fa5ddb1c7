package logger

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// WrapOption configures the bookkeeping messages of WrapFunc and Wrap.
type WrapOption func(*wrapOptions)

type wrapOptions struct {
	name       string
	doc        string
	traceLevel Level
	docLevel   Level
	errorLevel Level
}

// WithTraceLevel sets the level of the "About to run" and "Done running"
// messages. Default: DebugLevel. NoLevel disables them.
func WithTraceLevel(level Level) WrapOption {
	return func(o *wrapOptions) { o.traceLevel = level }
}

// WithDocLevel sets the level the description from WithDoc is logged at.
// Default: InfoLevel. NoLevel disables it.
func WithDocLevel(level Level) WrapOption {
	return func(o *wrapOptions) { o.docLevel = level }
}

// WithErrorLevel sets the level for errors and panics of the wrapped function.
// Default: WarningLevel. NoLevel disables it; the error is still returned.
func WithErrorLevel(level Level) WrapOption {
	return func(o *wrapOptions) { o.errorLevel = level }
}

// WithName overrides the function name derived from the runtime.
func WithName(name string) WrapOption {
	return func(o *wrapOptions) { o.name = name }
}

// WithDoc attaches a human-readable description logged before each call.
func WithDoc(doc string) WrapOption {
	return func(o *wrapOptions) { o.doc = doc }
}

// call holds everything a wrapper needs, resolved once at wrap time.
type call struct {
	l      *Logger
	opts   wrapOptions
	source string
}

func (l *Logger) newCall(fn any, opts []WrapOption) *call {
	o := wrapOptions{
		traceLevel: DebugLevel,
		docLevel:   InfoLevel,
		errorLevel: WarningLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	name, source := funcInfo(fn)
	if o.name == "" {
		o.name = name
	}
	return &call{l: l, opts: o, source: source}
}

func (c *call) before() {
	if op := c.l.operation(c.opts.traceLevel); op != nil {
		c.l.report(op("About to run " + c.opts.name))
	}
	if op := c.l.operation(c.opts.docLevel); op != nil && c.opts.doc != "" {
		c.l.report(op(c.opts.doc))
	}
}

func (c *call) after() {
	if op := c.l.operation(c.opts.traceLevel); op != nil {
		c.l.report(op("Done running " + c.opts.name))
	}
}

func (c *call) failed(err error) {
	if op := c.l.operation(c.opts.errorLevel); op != nil {
		c.l.report(op(fmt.Sprintf("error raised in %s, function: %s. error: %v", c.source, c.opts.name, err)))
	}
}

func (c *call) panicked(p any) {
	if op := c.l.operation(c.opts.errorLevel); op != nil {
		c.l.report(op(fmt.Sprintf("panic raised in %s, function: %s. panic: %v", c.source, c.opts.name, p)))
	}
}

// rethrow logs a panic of the wrapped function and panics again with the same value.
// It must be deferred directly.
func (c *call) rethrow() {
	if p := recover(); p != nil {
		c.panicked(p)
		panic(p)
	}
}

// WrapFunc returns fn wrapped with bookkeeping messages. An error returned by
// fn is logged and returned unchanged; a panic is logged and re-raised.
func (l *Logger) WrapFunc(fn func() error, opts ...WrapOption) func() error {
	c := l.newCall(fn, opts)
	return func() error {
		defer c.rethrow()
		c.before()
		if err := fn(); err != nil {
			c.failed(err)
			return err
		}
		c.after()
		return nil
	}
}

// Wrap is WrapFunc for functions taking an argument and returning a result.
// The result is passed through unchanged, including on error.
func Wrap[A, R any](l *Logger, fn func(A) (R, error), opts ...WrapOption) func(A) (R, error) {
	c := l.newCall(fn, opts)
	return func(arg A) (R, error) {
		defer c.rethrow()
		c.before()
		result, err := fn(arg)
		if err != nil {
			c.failed(err)
			return result, err
		}
		c.after()
		return result, nil
	}
}

// funcInfo returns "package.Function" and "file:line" for a function value.
func funcInfo(fn any) (name, source string) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "unknown", "unknown"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "unknown", "unknown"
	}
	full := f.Name()
	// Strip package path, keep package.Function
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	file, line := f.FileLine(f.Entry())
	return full, fmt.Sprintf("%s:%d", file, line)
}
