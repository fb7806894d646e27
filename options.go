package sigil

import "io"

// Option configures conversion behavior.
type Option func(*config)

type config struct {
	class       string
	routes      RouteResolver
	frontMatter bool
	trace       io.Writer
	traceWidth  int
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithClass sets the base class name used to derive BEM class attributes.
// An empty name disables class decoration.
func WithClass(name string) Option {
	return func(cfg *config) {
		cfg.class = name
	}
}

// WithRouteResolver sets the resolver consulted for link targets that name a
// route ("area::name"). Without one such targets are used verbatim.
func WithRouteResolver(r RouteResolver) Option {
	return func(cfg *config) {
		cfg.routes = r
	}
}

// WithFrontMatter enables or disables stripping of a leading front matter
// block.
func WithFrontMatter(strip bool) Option {
	return func(cfg *config) {
		cfg.frontMatter = strip
	}
}

// WithTrace records one line per classified input line to w. Lines are
// truncated to width columns when width is positive.
func WithTrace(w io.Writer, width int) Option {
	return func(cfg *config) {
		cfg.trace = w
		cfg.traceWidth = width
	}
}
