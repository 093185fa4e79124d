package bitmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/novelties/assets"
)

// Source kinds accepted by SourceFor.
const (
	SourceBuiltin = "builtin"
	SourceRemote  = "remote"
)

const (
	// DefaultURL serves the same world map as the built-in template.
	DefaultURL     = "https://inventwithpython.com/bitmapworld.txt"
	DefaultTimeout = 10 * time.Second

	maxTemplateBytes = 1 << 20
)

var (
	ErrUnknownSource = errors.New("unknown template source")
	ErrEmptyTemplate = errors.New("template is empty")
)

// TemplateSource provides the glyph template to render through.
type TemplateSource interface {
	FetchTemplate(ctx context.Context) (string, error)
}

// Builtin serves the embedded template.
type Builtin struct{}

func (Builtin) FetchTemplate(context.Context) (string, error) {
	return assets.BitmapTemplate()
}

// FetchError describes a failed remote template retrieval.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch template %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch template %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Remote fetches the template with an HTTP GET.
type Remote struct {
	URL    string
	Client *http.Client
}

func (r Remote) FetchTemplate(ctx context.Context) (string, error) {
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return "", &FetchError{URL: r.URL, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: r.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: r.URL, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateBytes))
	if err != nil {
		return "", &FetchError{URL: r.URL, StatusCode: resp.StatusCode, Err: err}
	}
	text := strings.TrimRight(string(body), "\r\n")
	if strings.TrimSpace(text) == "" {
		return "", &FetchError{URL: r.URL, StatusCode: resp.StatusCode, Err: ErrEmptyTemplate}
	}
	log.Debug().Str("url", r.URL).Int("bytes", len(body)).Msg("fetched template")
	return text, nil
}

// Fallback serves Secondary when Primary fails.
type Fallback struct {
	Primary   TemplateSource
	Secondary TemplateSource
}

func (f Fallback) FetchTemplate(ctx context.Context) (string, error) {
	text, err := f.Primary.FetchTemplate(ctx)
	if err == nil {
		return text, nil
	}
	log.Warn().Err(err).Msg("template source failed, using fallback")
	return f.Secondary.FetchTemplate(ctx)
}

// SourceFor selects a TemplateSource by kind. Remote sources fall back to
// the built-in template.
func SourceFor(kind, url string, timeout time.Duration) (TemplateSource, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", SourceBuiltin:
		return Builtin{}, nil
	case SourceRemote:
		if url == "" {
			url = DefaultURL
		}
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		return Fallback{
			Primary:   Remote{URL: url, Client: &http.Client{Timeout: timeout}},
			Secondary: Builtin{},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}
