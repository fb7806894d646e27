// Package sigil converts a small line-oriented markup dialect to HTML.
//
// Every input line is classified by its leading sigil:
//
//	# Title            heading, up to six levels ("###### ")
//	* item             list item; consecutive items share one <ul>
//	|cell|cell         table row; consecutive rows share one table
//	[ note wide        opens a <div> block with modifier classes
//	]                  closes the innermost block
//	---                horizontal break
//	// text            HTML comment
//	/<b>raw</b>        emitted verbatim without the slash
//	\# not a title     forced paragraph
//	anything else      paragraph
//
// Inline, [img::src::alt::align] becomes an <img> element and
// [caption](target) becomes a link. Targets containing "::" name a route and
// are resolved through an optional RouteResolver.
//
// When a base class name is configured, generated elements carry BEM style
// classes derived from it (see BuildClass). Content is not escaped.
//
// Example:
//
//	html, err := sigil.Parse("# Hello\n* one\n* two\n", sigil.WithClass("doc"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(html)
package sigil
