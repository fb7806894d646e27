package sigil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []Option

	// MaxBytes caps the accepted body size; zero means DefaultMaxBytes.
	MaxBytes int64
}

// DefaultMaxBytes is the body size limit HTTPRender applies by default.
const DefaultMaxBytes = 8 << 20

// HTTPRender fetches markup over HTTP(S) and writes the converted HTML.
// The whole body is buffered, so responses larger than MaxBytes are refused.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("http render: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("http render: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("http render: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("http render: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http render: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("http render: status %s", resp.Status)
	}
	limit := req.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if resp.ContentLength > limit {
		return fmt.Errorf("http render: %d bytes: %w", resp.ContentLength, ErrBodyTooLarge)
	}
	err = Render(RenderRequest{
		Reader:  NewLimitReader(resp.Body, limit),
		Writer:  req.Writer,
		Options: req.Options,
	})
	if err != nil {
		return fmt.Errorf("http render: %w", err)
	}
	return nil
}

// ErrBodyTooLarge is returned by a reader from NewLimitReader once its source
// holds more than the allowed number of bytes.
var ErrBodyTooLarge = errors.New("body exceeds size limit")

// NewLimitReader returns a reader that yields at most n bytes of r and fails
// with ErrBodyTooLarge, instead of truncating, when r has more.
func NewLimitReader(r io.Reader, n int64) io.Reader {
	return &limitReader{r: r, n: n}
}

type limitReader struct {
	r io.Reader
	n int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.n <= 0 {
		var extra [1]byte
		n, err := l.r.Read(extra[:])
		if n > 0 {
			return 0, ErrBodyTooLarge
		}
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	return n, err
}
