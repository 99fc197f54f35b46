// Package lineinfile provides idempotent insertion of single lines into text
// files, like configuration or shell profile entries that must appear exactly
// once.
package lineinfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Contains reports whether the file at path contains the given line verbatim.
// A missing file contains nothing.
func Contains(path, line string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() == line {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return false, nil
}

// Ensure appends the given line to the file at path unless the exact line is
// already present. Parent directories are created when missing. When the
// existing content does not end in a newline, a separator newline is written
// first so the last line is never merged with the inserted one. The file
// always ends in a newline afterwards. Ensure is safe to call any number of
// times.
func Ensure(path, line string) error {
	line = strings.TrimSuffix(line, "\n")

	found, err := Contains(path, line)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, fileMode)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	needSeparator, err := missingTrailingNewline(f)
	if err != nil {
		return err
	}

	var sb strings.Builder
	if needSeparator {
		sb.WriteByte('\n')
	}
	sb.WriteString(line)
	sb.WriteByte('\n')

	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// missingTrailingNewline reports whether the open file is non-empty and does
// not end with a newline.
func missingTrailingNewline(f *os.File) (bool, error) {
	stat, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", f.Name(), err)
	}
	if stat.Size() == 0 {
		return false, nil
	}
	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, stat.Size()-1); err != nil {
		return false, fmt.Errorf("read %s: %w", f.Name(), err)
	}
	return buf[0] != '\n', nil
}
