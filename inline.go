package sigil

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Capture group 1: payload, "src[::alt[::align[::...]]]". Segments past
	// the alignment are ignored.
	imageRegexp = regexp.MustCompile(`\[img::(.+?)\]`)
	// Capture groups:
	// 1. Caption
	// 2. Target, a URL or a route name containing "::"
	linkRegexp = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

const routeSeparator = "::"

// MalformedLinkError is returned when a link tag lacks its caption or target.
type MalformedLinkError struct {
	Match string
}

func (e *MalformedLinkError) Error() string {
	return fmt.Sprintf("malformed link %q", e.Match)
}

// replaceImages rewrites every [img::...] tag into an <img> element.
func replaceImages(text, class string) string {
	return imageRegexp.ReplaceAllStringFunc(text, func(match string) string {
		m := imageRegexp.FindStringSubmatch(match)
		return renderImage(m[1], class)
	})
}

func renderImage(payload, class string) string {
	parts := strings.Split(payload, "::")
	src, alt := parts[0], parts[0]
	if len(parts) > 1 {
		alt = parts[1]
	}
	var align string
	if len(parts) > 2 {
		align = strings.ToLower(parts[2])
	}

	var attr string
	if class == "" {
		switch align {
		case "left", "right":
			attr = ` style="float:` + align + `"`
		case "center":
			attr = ` style="margin:0 auto"`
		}
	} else {
		name := BuildClass(class, "img", true)
		if align != "" {
			name += " " + BuildClass(class, "img-"+align, true)
		}
		attr = ` class="` + name + `"`
	}
	return `<img` + attr + ` src="` + src + `" alt="` + alt + `">`
}

// replaceLinks rewrites every [caption](target) tag into an <a> element.
// Targets naming a route are resolved through routes when it is set.
func replaceLinks(text, class string, routes RouteResolver) (string, error) {
	idx := linkRegexp.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return text, nil
	}
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range idx {
		sb.WriteString(text[last:m[0]])
		link, err := renderLink(submatches(text, m), class, routes)
		if err != nil {
			return "", err
		}
		sb.WriteString(link)
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}

// submatches expands a submatch index slice. Groups that did not take part in
// the match are reported as absent.
func submatches(text string, m []int) []*string {
	out := make([]*string, len(m)/2)
	for i := range out {
		if m[2*i] < 0 {
			continue
		}
		s := text[m[2*i]:m[2*i+1]]
		out[i] = &s
	}
	return out
}

func renderLink(groups []*string, class string, routes RouteResolver) (string, error) {
	if len(groups) < 3 || groups[1] == nil || groups[2] == nil {
		var match string
		if len(groups) > 0 && groups[0] != nil {
			match = *groups[0]
		}
		return "", &MalformedLinkError{Match: match}
	}
	caption, target := *groups[1], *groups[2]

	if routes != nil && strings.Contains(target, routeSeparator) {
		href, err := routes.ResolveRoute(target)
		if err != nil {
			return "", fmt.Errorf("resolve route %q: %w", target, err)
		}
		target = href
	}
	return `<a` + classAttr(class, "link") + ` href="` + target + `">` + caption + `</a>`, nil
}
