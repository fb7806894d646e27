package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/sigil"
	"pkt.systems/version"
)

const (
	classEnv          = "SIGIL_CLASS"
	defaultTraceWidth = 120
	fetchTimeout      = 30 * time.Second
)

func init() {
	version.SetDefaultModule("pkt.systems/sigil")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		className   string
		routesPath  string
		outPath     string
		frontMatter bool
		trace       bool
		traceWidth  int
		showVersion bool
	)

	flags := pflag.NewFlagSet("sigil", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&className, "class", "c", os.Getenv(classEnv), "Base CSS class for generated elements (default $"+classEnv+")")
	flags.StringVarP(&routesPath, "routes", "r", "", "YAML file mapping route names to URLs")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&frontMatter, "front-matter", false, "Strip a leading front matter block")
	flags.BoolVar(&trace, "trace", false, "Print line classification to stderr")
	flags.IntVarP(&traceWidth, "width", "w", 0, "Trace width override (0 uses terminal width if available)")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: sigil [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	opts := []sigil.Option{
		sigil.WithClass(strings.TrimSpace(className)),
		sigil.WithFrontMatter(frontMatter),
	}
	if routesPath != "" {
		routes, err := loadRoutes(routesPath)
		if err != nil {
			fmt.Fprintf(stderr, "load routes: %v\n", err)
			return 1
		}
		opts = append(opts, sigil.WithRouteResolver(routes))
	}
	if trace {
		opts = append(opts, sigil.WithTrace(stderr, resolveWidth(traceWidth, stderr)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	src, err := readInputs(ctx, flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if err := sigil.Render(sigil.RenderRequest{
		Reader:  bytes.NewReader(src),
		Writer:  writer,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func loadRoutes(path string) (sigil.RouteTable, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sigil.LoadRouteTable(f)
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultTraceWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}

// readInputs concatenates all inputs, separated by a newline so that the last
// line of one input never runs into the first line of the next. Inputs are
// file paths, file:// URLs or http(s) URLs; no inputs means stdin.
func readInputs(ctx context.Context, args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	var buf bytes.Buffer
	for i, raw := range args {
		data, err := readInput(ctx, raw)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

func readInput(ctx context.Context, raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return fetchURL(ctx, raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return os.ReadFile(normalizePath(path))
		}
	}
	return os.ReadFile(normalizePath(raw))
}

func fetchURL(ctx context.Context, raw string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	if resp.ContentLength > sigil.DefaultMaxBytes {
		return nil, fmt.Errorf("http %s: %d bytes: %w", raw, resp.ContentLength, sigil.ErrBodyTooLarge)
	}
	data, err := io.ReadAll(sigil.NewLimitReader(resp.Body, sigil.DefaultMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("http %s: %w", raw, err)
	}
	return data, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
