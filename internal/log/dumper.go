package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Dumper writes the full text of generated files, used to inspect dry runs.
type Dumper interface {
	Dump(lang, name string, lines []string)
}

type dumper struct {
	w  io.Writer
	mu sync.Mutex
}

// NewDumper creates a Dumper. A nil writer yields a no-op dumper.
func NewDumper(w io.Writer) Dumper {
	return &dumper{w: w}
}

// Dump emits a timestamped banner followed by the file body. Concurrent dumps
// do not interleave.
func (d *dumper) Dump(lang, name string, lines []string) {
	if d.w == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s ==> %s/%s (%d lines)\n",
		time.Now().Format("2006/01/02 15:04:05"),
		lang,
		name,
		len(lines))
	b.WriteString(strings.Join(lines, "\n"))
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}

	d.mu.Lock()
	_, _ = io.WriteString(d.w, b.String())
	d.mu.Unlock()
}
