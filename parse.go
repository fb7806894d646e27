package sigil

import (
	"regexp"
	"strconv"
	"strings"
)

const lineEnd = "\r\n"

var (
	lineSplitRegexp = regexp.MustCompile(`\r\n|\n`)
	// Capture group 1: cell content. Periods end a cell as well as pipes.
	tableCellRegexp = regexp.MustCompile(`\|([^|.]+)`)
)

// Longest prefix first so "## " is never taken for "# ".
var headingPrefixes = [...]string{
	"###### ",
	"##### ",
	"#### ",
	"### ",
	"## ",
	"# ",
}

// parseState is the open-construct state carried from one line to the next.
type parseState struct {
	listOpen  bool
	tableOpen bool
	depth     int
}

// line is a classified input line. text holds the content left once the
// prefix has been removed.
type line struct {
	kind  Kind
	level int
	text  string
}

// Parse converts markup to an HTML fragment. Empty content yields "" and a
// nil error.
//
// The only conversion error is a *MalformedLinkError; an error returned by a
// configured RouteResolver or trace writer is passed on wrapped.
func Parse(content string, opts ...Option) (string, error) {
	if content == "" {
		return "", nil
	}
	cfg := newConfig(opts)
	if cfg.frontMatter {
		content = stripFrontMatter(content)
	}
	tr := newTracer(cfg.trace, cfg.traceWidth)

	var sb strings.Builder
	sb.Grow(len(content) * 2)
	state := parseState{}
	for _, raw := range splitLines(content) {
		l := classify(raw)
		state = step(&sb, cfg.class, state, l)
		tr.record(l, state, raw)
	}
	finish(&sb, state)
	if err := tr.err; err != nil {
		return "", err
	}

	out := replaceImages(sb.String(), cfg.class)
	return replaceLinks(out, cfg.class, cfg.routes)
}

// splitLines splits on CRLF or LF, trims each line and drops blank ones.
func splitLines(content string) []string {
	parts := lineSplitRegexp.Split(content, -1)
	lines := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

// classify determines the kind of a trimmed line. The first matching prefix
// wins.
func classify(s string) line {
	for i, prefix := range headingPrefixes {
		if strings.HasPrefix(s, prefix) {
			return line{kind: KindHeading, level: len(headingPrefixes) - i, text: s[len(prefix):]}
		}
	}
	switch {
	case strings.HasPrefix(s, "* "):
		return line{kind: KindListItem, text: s[2:]}
	case strings.HasPrefix(s, "|"):
		return line{kind: KindTableRow, text: s}
	case strings.HasPrefix(s, "[") && !isInlineTag(s):
		return line{kind: KindBlockOpen, text: strings.TrimSpace(s[1:])}
	case strings.HasPrefix(s, "]"):
		return line{kind: KindBlockClose}
	case strings.HasPrefix(s, "---"):
		return line{kind: KindBreak}
	case strings.HasPrefix(s, "//"):
		return line{kind: KindComment, text: strings.TrimSpace(s[2:])}
	case strings.HasPrefix(s, "/"):
		return line{kind: KindRaw, text: s[1:]}
	case strings.HasPrefix(s, `\`):
		return line{kind: KindParagraph, text: strings.TrimSpace(s[1:])}
	}
	return line{kind: KindParagraph, text: s}
}

// isInlineTag reports whether a line starting with "[" starts with an image or
// link tag, which the inline passes handle instead of the block opener. A link
// caption may hold image tags but no other "[".
func isInlineTag(s string) bool {
	if loc := imageRegexp.FindStringIndex(s); loc != nil && loc[0] == 0 {
		return true
	}
	m := linkRegexp.FindStringSubmatchIndex(s)
	if m == nil || m[0] != 0 {
		return false
	}
	caption := imageRegexp.ReplaceAllString(s[m[2]:m[3]], "")
	return !strings.Contains(caption, "[")
}

// step writes the HTML for one classified line and returns the new state.
func step(sb *strings.Builder, class string, st parseState, l line) parseState {
	if st.listOpen && l.kind != KindListItem {
		sb.WriteString("</ul>" + lineEnd)
		st.listOpen = false
	}
	if st.tableOpen && l.kind != KindTableRow {
		sb.WriteString("</table>" + lineEnd + "</div>" + lineEnd)
		st.tableOpen = false
	}

	switch l.kind {
	case KindHeading:
		tag := "h" + strconv.Itoa(l.level)
		writeElement(sb, tag, classAttr(class, "title"), l.text)
	case KindListItem:
		if !st.listOpen {
			sb.WriteString("<ul" + classAttr(class, "list") + ">" + lineEnd)
			st.listOpen = true
		}
		writeElement(sb, "li", classAttr(class, "list-item"), l.text)
	case KindTableRow:
		if !st.tableOpen {
			sb.WriteString("<div" + classAttr(class, "table-container") + ">" + lineEnd)
			sb.WriteString("<table" + classAttr(class, "table") + ">" + lineEnd)
			st.tableOpen = true
		}
		writeTableRow(sb, class, l.text)
	case KindBlockOpen:
		sb.WriteString("<div" + blockClassAttr(class, strings.Fields(l.text)) + ">" + lineEnd)
		st.depth++
	case KindBlockClose:
		if st.depth > 0 {
			sb.WriteString("</div>" + lineEnd)
			st.depth--
		}
	case KindBreak:
		sb.WriteString("<hr" + classAttr(class, "break") + ">" + lineEnd)
	case KindComment:
		sb.WriteString("<!-- " + l.text + " -->" + lineEnd)
	case KindRaw:
		sb.WriteString(l.text)
	default:
		writeElement(sb, "p", classAttr(class, "paragraph"), l.text)
	}
	return st
}

// finish closes whatever is still open at the end of input.
func finish(sb *strings.Builder, st parseState) {
	if st.listOpen {
		sb.WriteString("</ul>" + lineEnd)
	}
	if st.tableOpen {
		sb.WriteString("</table>" + lineEnd + "</div>" + lineEnd)
	}
	for i := 0; i < st.depth; i++ {
		sb.WriteString("</div>" + lineEnd)
	}
}

func writeElement(sb *strings.Builder, tag, attr, text string) {
	sb.WriteString("<" + tag + attr + ">")
	sb.WriteString(text)
	sb.WriteString("</" + tag + ">" + lineEnd)
}

func writeTableRow(sb *strings.Builder, class, row string) {
	sb.WriteString("<tr" + classAttr(class, "table-row") + ">" + lineEnd)
	cellAttr := classAttr(class, "table-cell")
	// Text outside the cell runs, such as ".50" in "|1.50", is kept as is.
	sb.WriteString(tableCellRegexp.ReplaceAllStringFunc(row, func(cell string) string {
		return "<td" + cellAttr + ">" + strings.TrimSpace(cell[1:]) + "</td>" + lineEnd
	}))
	sb.WriteString("</tr>" + lineEnd)
}

// blockClassAttr builds the class attribute of a block div from its modifier
// words.
func blockClassAttr(class string, words []string) string {
	if len(words) == 0 {
		return classAttr(class, "block")
	}
	names := make([]string, 0, len(words))
	for _, w := range words {
		names = append(names, BuildClass(class, "block-"+w, true))
	}
	return ` class="` + strings.Join(names, " ") + `"`
}
