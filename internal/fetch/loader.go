package fetch

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Some cover hosts reject requests without a browser user agent.
const loaderUserAgent = "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/121.0"

// Loader downloads and decodes a cover image from a URL or local path.
type Loader struct {
	Client    *http.Client
	UserAgent string
}

// NewLoader returns a Loader with a sensible request timeout.
func NewLoader() *Loader {
	return &Loader{
		Client:    &http.Client{Timeout: 10 * time.Second},
		UserAgent: loaderUserAgent,
	}
}

// Load fetches and decodes the image behind source. http:// and
// https:// URLs are downloaded, file:// URLs and bare paths are read
// from disk.
func (l *Loader) Load(ctx context.Context, source string) (image.Image, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.download(ctx, source)
	case strings.HasPrefix(source, "file://"):
		return l.open(strings.TrimPrefix(source, "file://"))
	default:
		return l.open(source)
	}
}

func (l *Loader) download(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download cover: unexpected status %s", resp.Status)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}
	return img, nil
}

func (l *Loader) open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cover: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode cover %s: %w", path, err)
	}
	return img, nil
}
