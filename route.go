package sigil

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnknownRoute reports a route name missing from a RouteTable.
var ErrUnknownRoute = errors.New("unknown route")

// RouteResolver maps a route name such as "home::index" to a URL.
type RouteResolver interface {
	ResolveRoute(name string) (string, error)
}

// RouteResolverFunc adapts a function to a RouteResolver.
type RouteResolverFunc func(name string) (string, error)

func (f RouteResolverFunc) ResolveRoute(name string) (string, error) { return f(name) }

// RouteTable is a static RouteResolver keyed by route name.
type RouteTable map[string]string

func (t RouteTable) ResolveRoute(name string) (string, error) {
	url, ok := t[name]
	if !ok {
		return "", ErrUnknownRoute
	}
	return url, nil
}

// LoadRouteTable reads a YAML mapping of route names to URLs.
//
//	home::index: /
//	blog::show: /blog
func LoadRouteTable(r io.Reader) (RouteTable, error) {
	table := RouteTable{}
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		return nil, fmt.Errorf("route table: %w", err)
	}
	return table, nil
}
