package sigil

// Kind classifies a single input line.
type Kind uint8

const (
	// KindParagraph is the fallback, including lines forced with a backslash.
	KindParagraph Kind = iota
	// KindHeading is a "# " to "###### " line.
	KindHeading
	// KindListItem is a "* " line.
	KindListItem
	// KindTableRow is a "|" line.
	KindTableRow
	// KindBlockOpen is a "[" line that does not start with an image or link tag.
	KindBlockOpen
	// KindBlockClose is a "]" line.
	KindBlockClose
	// KindBreak is a "---" line.
	KindBreak
	// KindComment is a "//" line.
	KindComment
	// KindRaw is a "/" line emitted verbatim.
	KindRaw
)

var kindNames = [...]string{
	KindParagraph:  "Paragraph",
	KindHeading:    "Heading",
	KindListItem:   "ListItem",
	KindTableRow:   "TableRow",
	KindBlockOpen:  "BlockOpen",
	KindBlockClose: "BlockClose",
	KindBreak:      "Break",
	KindComment:    "Comment",
	KindRaw:        "Raw",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
