package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pkt.systems/sigil"
)

// variants maps golden file variants to the base class they render with.
var variants = map[string]string{
	"plain": "",
	"doc":   "doc",
}

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sgl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markup files found under %s", root)
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		for _, name := range names {
			out, err := sigil.Parse(string(src), sigil.WithClass(variants[name]))
			if err != nil {
				fatalf("parse %s (%s): %v", path, name, err)
			}
			outPath := goldenPath(path, name)
			if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
				fatalf("write %s: %v", outPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", outPath)
		}
	}
}

func goldenPath(src, variant string) string {
	return strings.TrimSuffix(src, ".sgl") + "." + variant + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
