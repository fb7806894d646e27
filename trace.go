package sigil

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// tracer records line classifications. A nil writer disables it.
type tracer struct {
	w     io.Writer
	width int
	sb    strings.Builder
	err   error
}

func newTracer(w io.Writer, width int) *tracer {
	return &tracer{w: w, width: width}
}

func (t *tracer) record(l line, st parseState, raw string) {
	if t.w == nil || t.err != nil {
		return
	}
	t.sb.Reset()
	t.sb.WriteString(l.kind.String())
	if l.level != 0 {
		fmt.Fprintf(&t.sb, " Level=%d", l.level)
	}
	fmt.Fprintf(&t.sb, " depth=%d list=%t table=%t | %s", st.depth, st.listOpen, st.tableOpen, raw)
	if _, err := io.WriteString(t.w, fitWidth(t.sb.String(), t.width)+"\n"); err != nil {
		t.err = fmt.Errorf("trace: %w", err)
	}
}

func fitWidth(text string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}
