package osrelease

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrParseOSRelease is returned when an error occurs parsing an os-release file.
var ErrParseOSRelease = errors.New("parse os-release")

// Decode decodes an os-release file from an io.Reader.
func Decode(r io.Reader) (*OSRelease, error) {
	osr := &OSRelease{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if v, err := strconv.Unquote(value); err == nil {
			value = v
		}
		osr.set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrParseOSRelease, err)
	}

	// ArchLinux has no versions
	if osr.ID == "arch" || osr.IDLike == "arch" {
		osr.Version = "0.0.0"
	}

	if osr.Name == "" || osr.ID == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrParseOSRelease)
	}

	return osr, nil
}

// DecodeString decodes an os-release file from a string.
func DecodeString(s string) (*OSRelease, error) {
	return Decode(strings.NewReader(s))
}

func (o *OSRelease) set(key, value string) {
	switch key {
	case "NAME":
		o.Name = value
	case "VERSION":
		o.Version = value
	case "ID":
		o.ID = value
	case "ID_LIKE":
		o.IDLike = value
	case "VERSION_ID":
		o.VersionID = value
	case "PRETTY_NAME":
		o.PrettyName = value
	default:
		if o.Extra == nil {
			o.Extra = make(map[string]string)
		}
		o.Extra[key] = value
	}
}
