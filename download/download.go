// Package download fetches files over HTTP with a size sanity check.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/retry"
)

var (
	// ErrTooSmall is returned when a downloaded file is smaller than the
	// configured minimum size, which usually means an error page or a
	// truncated transfer.
	ErrTooSmall = errors.New("downloaded file is implausibly small")

	// ErrRequestFailed is returned when the server responds with a
	// non-success status.
	ErrRequestFailed = errors.New("request failed")
)

// DefaultMinSize is the default minimum acceptable file size in bytes.
const DefaultMinSize int64 = 10

// Option is a functional option for downloads.
type Option func(*Options)

// Options is a collection of download options.
type Options struct {
	log.LoggerInjectable

	minSize  int64
	client   *http.Client
	retries  int
	progress bool
}

// MinSize sets the minimum acceptable size in bytes for the downloaded file.
func MinSize(n int64) Option {
	return func(o *Options) {
		o.minSize = n
	}
}

// Client sets the http client to use.
func Client(c *http.Client) Option {
	return func(o *Options) {
		o.client = c
	}
}

// Retries sets the number of attempts for transient failures. The default is 3.
func Retries(n int) Option {
	return func(o *Options) {
		o.retries = n
	}
}

// Progress controls whether a progress bar is drawn. The default is to draw
// one when stderr is a terminal.
func Progress(enabled bool) Option {
	return func(o *Options) {
		o.progress = enabled
	}
}

// Logger sets the logger for the download.
func Logger(l log.Logger) Option {
	return func(o *Options) {
		o.SetLogger(l)
	}
}

// Build returns an Options struct with the given options applied.
func Build(opts ...Option) *Options {
	options := &Options{
		minSize:  DefaultMinSize,
		client:   &http.Client{Timeout: 5 * time.Minute},
		retries:  3,
		progress: term.IsTerminal(int(os.Stderr.Fd())),
	}
	for _, o := range opts {
		o(options)
	}
	return options
}

// File downloads the contents of the given url into dest. Parent directories
// are created when missing. The file is written via a temporary file and
// renamed into place so a failed download never leaves a partial file behind.
// A response smaller than the minimum size fails with ErrTooSmall.
func File(ctx context.Context, url, dest string, opts ...Option) error {
	options := Build(opts...)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", dest, err)
	}

	err := retry.DoWithContext(ctx, func(ctx context.Context) error {
		return fetch(ctx, url, dest, options)
	}, retry.MaxRetries(options.retries), retry.Delay(time.Second), retry.Backoff(2.0))
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}

	return nil
}

func fetch(ctx context.Context, url, dest string, options *Options) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", retry.ErrAbort, err)
	}

	resp, err := options.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: %s: %s", ErrRequestFailed, url, resp.Status)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// client errors won't get better by retrying
			return fmt.Errorf("%w: %w", retry.ErrAbort, err)
		}
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.partial")
	if err != nil {
		return fmt.Errorf("%w: create temporary file: %w", retry.ErrAbort, err)
	}
	defer func() {
		tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	var out io.Writer = tmp
	if options.progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, filepath.Base(dest))
		out = io.MultiWriter(tmp, bar)
	}

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	if written < options.minSize {
		// a valid payload is never this small, so retrying won't help
		return fmt.Errorf("%w: %w: %s is %d bytes, expected at least %d", retry.ErrAbort, ErrTooSmall, dest, written, options.minSize)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("%w: move download into place: %w", retry.ErrAbort, err)
	}

	options.Log().Info("downloaded", log.KeyFile, dest, log.KeyBytes, written, log.KeyURL, url)
	return nil
}
