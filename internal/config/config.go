// Package config loads the property-file that defines the button panel.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/magiconair/properties"
)

// ErrUsage is returned when no configuration path was supplied.
var ErrUsage = errors.New("configuration file path required")

// ErrInvalidEncoding is wrapped by ReadError when the file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// NotFoundError reports a path that does not exist or is not a regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found at path: %s", e.Path)
}

// ReadError reports an I/O or parse failure while reading the file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading properties file: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Load reads the property file at path and returns its key/value pairs.
// Values are returned verbatim; ${...} references are not expanded.
func Load(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &ReadError{
			Path: path,
			Err:  fmt.Errorf("%w (first bad byte at offset %d)", ErrInvalidEncoding, invalidOffset(data)),
		}
	}

	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}

	props, err := loader.LoadBytes(trimDanglingEscape(data))
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return props.Map(), nil
}

// trimDanglingEscape drops an unpaired backslash ending the last line, which
// would otherwise escape end of input. Trailing line terminators go with it.
func trimDanglingEscape(data []byte) []byte {
	end := len(bytes.TrimRight(data, "\r\n"))

	run := 0
	for run < end && data[end-1-run] == '\\' {
		run++
	}

	if run%2 == 0 {
		return data
	}

	return data[:end-1]
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}

		i += size
	}

	return -1
}
