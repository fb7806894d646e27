package sigil

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadRouteTable(t *testing.T) {
	src := "home::index: /\nblog::show: /blog\n"
	table, err := LoadRouteTable(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadRouteTable: %v", err)
	}
	want := RouteTable{"home::index": "/", "blog::show": "/blog"}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("diff (-want +got):\n%s", diff)
	}
	url, err := table.ResolveRoute("blog::show")
	if err != nil || url != "/blog" {
		t.Fatalf("ResolveRoute=%q, %v", url, err)
	}
	if _, err := table.ResolveRoute("nope::x"); !errors.Is(err, ErrUnknownRoute) {
		t.Fatalf("expected ErrUnknownRoute, got %v", err)
	}
}

func TestLoadRouteTableEmpty(t *testing.T) {
	table, err := LoadRouteTable(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadRouteTable: %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestLoadRouteTableRejectsInvalid(t *testing.T) {
	if _, err := LoadRouteTable(strings.NewReader("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for a sequence")
	}
}
