package exec

import (
	"io"
	"strings"

	"github.com/aikaryashala/kitup/log"
)

// Option is a functional option for command execution.
type Option func(*Options)

// Options is a collection of exec options.
type Options struct {
	log.LoggerInjectable

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logCommand   bool
	logOutput    bool
	logError     bool
	trimOutput   bool
	streamOutput bool

	errTail tailWriter

	decorateFuncs []DecorateFunc
}

// Command returns the command string with all the decorators applied.
func (o *Options) Command(cmd string) string {
	for _, decorator := range o.decorateFuncs {
		cmd = decorator(cmd)
	}
	return cmd
}

// LogCommand returns true if the command should be logged before running.
func (o *Options) LogCommand() bool {
	return o.logCommand
}

// Stdin returns the configured stdin reader, nil when not set.
func (o *Options) Stdin() io.Reader {
	return o.in
}

// Stdout returns the stdout writer. When output logging is enabled it is a
// MultiWriter that also writes to the log.
func (o *Options) Stdout() io.Writer {
	var writers []io.Writer
	switch {
	case o.streamOutput:
		writers = append(writers, logWriter{fn: o.Log().Info})
	case o.logOutput:
		writers = append(writers, logWriter{fn: o.Log().Debug})
	}
	if o.out != nil {
		writers = append(writers, o.out)
	}
	return io.MultiWriter(writers...)
}

// Stderr returns the stderr writer. The command's stderr is always retained
// in a bounded buffer so it can be attached to the error when the command
// fails.
func (o *Options) Stderr() io.Writer {
	var writers []io.Writer
	switch {
	case o.streamOutput:
		writers = append(writers, logWriter{fn: o.Log().Error})
	case o.logError:
		writers = append(writers, logWriter{fn: o.Log().Debug})
	}
	writers = append(writers, &o.errTail)
	if o.errOut != nil {
		writers = append(writers, o.errOut)
	}
	return io.MultiWriter(writers...)
}

// ErrorOutput returns the tail of what the command wrote to stderr.
func (o *Options) ErrorOutput() string {
	return o.errTail.String()
}

// FormatOutput applies the output formatting options to the given string.
func (o *Options) FormatOutput(s string) string {
	if o.trimOutput {
		return strings.TrimSpace(s)
	}
	return s
}

// Stdin sets the command's stdin to the given reader.
func Stdin(r io.Reader) Option {
	return func(o *Options) {
		o.in = r
	}
}

// StdinString sets the command's stdin to the given string.
func StdinString(s string) Option {
	return func(o *Options) {
		o.in = strings.NewReader(s)
	}
}

// Stdout sets the command's stdout to the given writer.
func Stdout(w io.Writer) Option {
	return func(o *Options) {
		o.out = w
	}
}

// Stderr sets the command's stderr to the given writer.
func Stderr(w io.Writer) Option {
	return func(o *Options) {
		o.errOut = w
	}
}

// StreamOutput makes the command's output stream to the log as it arrives,
// stdout at info level and stderr at error level. Used for long-running
// commands whose progress the user should see.
func StreamOutput() Option {
	return func(o *Options) {
		o.streamOutput = true
	}
}

// HideOutput disables logging of the command's output.
func HideOutput() Option {
	return func(o *Options) {
		o.logOutput = false
		o.logError = false
	}
}

// TrimOutput controls whether the output of ExecOutput is trimmed of
// whitespace. The default is true.
func TrimOutput(trim bool) Option {
	return func(o *Options) {
		o.trimOutput = trim
	}
}

// HideCommand disables logging of the command line before running it.
func HideCommand() Option {
	return func(o *Options) {
		o.logCommand = false
	}
}

// Decorate adds a command decorator for this execution only.
func Decorate(decorator DecorateFunc) Option {
	return func(o *Options) {
		o.decorateFuncs = append(o.decorateFuncs, decorator)
	}
}

// Logger sets the logger for this execution.
func Logger(l log.Logger) Option {
	return func(o *Options) {
		o.SetLogger(l)
	}
}

// Build returns an Options struct with the given options applied.
func Build(opts ...Option) *Options {
	options := &Options{
		logCommand: true,
		logOutput:  true,
		logError:   true,
		trimOutput: true,
	}

	for _, o := range opts {
		o(options)
	}

	return options
}

// logWriter calls a logging function for each chunk written.
type logWriter struct {
	fn func(string, ...any)
}

func (l logWriter) Write(p []byte) (int, error) {
	if s := strings.TrimRight(string(p), "\n"); s != "" {
		l.fn(s)
	}
	return len(p), nil
}

const maxErrTail = 2048

// tailWriter retains the last maxErrTail bytes written to it.
type tailWriter struct {
	buf []byte
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	if len(w.buf) > maxErrTail {
		w.buf = w.buf[len(w.buf)-maxErrTail:]
	}
	return len(p), nil
}

func (w *tailWriter) String() string {
	return strings.TrimSpace(string(w.buf))
}
