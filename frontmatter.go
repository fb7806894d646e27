package sigil

import "strings"

var frontMatterDelimiters = [...]string{"---", "+++", ";;;"}

// stripFrontMatter removes a metadata block fenced by "---", "+++" or ";;;"
// at the very start of content. Content is returned unchanged when the
// opening fence is not followed by something that looks like metadata or
// when the block is never closed.
func stripFrontMatter(content string) string {
	first, rest, ok := strings.Cut(content, "\n")
	if !ok {
		return content
	}
	delim, isFrontMatter := openingDelimiter(first)
	if !isFrontMatter {
		return content
	}
	second, _, _ := strings.Cut(rest, "\n")
	if !metadataLikely(second) {
		return content
	}
	for len(rest) > 0 {
		var l string
		l, rest, _ = strings.Cut(rest, "\n")
		if strings.TrimSpace(l) == delim {
			return rest
		}
	}
	return content
}

func openingDelimiter(l string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(l, "\uFEFF"))
	for _, d := range frontMatterDelimiters {
		if trimmed == d {
			return d, true
		}
	}
	return "", false
}

func metadataLikely(l string) bool {
	trimmed := strings.TrimSpace(l)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
