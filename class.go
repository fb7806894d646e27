package sigil

import "strings"

const (
	elementDivider  = "__"
	modifierDivider = "-"
)

// BuildClass derives a BEM style class from a base class name and a semantic
// suffix. An empty string means the value is absent.
//
// The divider between base and suffix is "__" unless base already names an
// element (contains "__"), in which case "-" is used. With raw set the bare
// class value is returned; otherwise it is wrapped as ` class="..."` with a
// leading space so it can follow a tag name directly. BuildClass returns ""
// when both base and suffix are empty.
func BuildClass(base, suffix string, raw bool) string {
	if base == "" && suffix == "" {
		return ""
	}
	value := suffix
	if base != "" {
		value = base
		if suffix != "" {
			value = base + divider(base) + strings.TrimSpace(suffix)
		}
	}
	if raw {
		return value
	}
	return ` class="` + value + `"`
}

func divider(base string) string {
	if strings.Contains(base, elementDivider) {
		return modifierDivider
	}
	return elementDivider
}

// classAttr returns the class attribute for suffix, or "" when no base class
// is configured.
func classAttr(base, suffix string) string {
	if base == "" {
		return ""
	}
	return BuildClass(base, suffix, false)
}
