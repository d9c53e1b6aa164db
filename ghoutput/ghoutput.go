package ghoutput

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ErrNoOutputFile indicates GITHUB_OUTPUT was not set.
var ErrNoOutputFile = errors.New("output file not set")

// Escape encodes a value for a single output line. '%' is encoded first
// so that the encodings of CR and LF are not themselves re-encoded.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// Writer appends outputs to an underlying writer.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewWriter wraps w. Close on the returned Writer does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// OpenFile opens path for appending, creating it if needed.
func OpenFile(path string) (*Writer, error) {
	if path == "" {
		return nil, ErrNoOutputFile
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	return &Writer{w: f, closer: f}, nil
}

// Set writes one output. Strings are written as-is; nil writes an empty
// value; anything else is JSON-encoded first.
func (w *Writer) Set(key string, value any) error {
	if key == "" || strings.ContainsAny(key, "=\r\n") {
		return fmt.Errorf("invalid output key %q", key)
	}

	var s string
	switch v := value.(type) {
	case nil:
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode output %s: %w", key, err)
		}
		s = string(data)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintf(w.w, "%s=%s\n", key, Escape(s)); err != nil {
		return fmt.Errorf("write output %s: %w", key, err)
	}
	return nil
}

// SetAll writes outputs in the order given by keys.
func (w *Writer) SetAll(keys []string, values map[string]any) error {
	for _, k := range keys {
		if err := w.Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the file opened by OpenFile.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
