// Package fetch resolves and downloads the cover images the poster is
// built from: a thin MangaDex API client for looking up cover URLs by
// volume number, and an HTTP loader that decodes covers with a
// generated placeholder as the fallback.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

const (
	defaultAPIBaseURL   = "https://api.mangadex.org"
	defaultCoverBaseURL = "https://uploads.mangadex.org"
)

// Fetcher resolves volume cover URLs through the MangaDex API.
type Fetcher struct {
	APIBaseURL   string
	CoverBaseURL string
	Client       *http.Client
}

// NewFetcher returns a Fetcher against the public MangaDex API.
func NewFetcher() *Fetcher {
	return &Fetcher{
		APIBaseURL:   defaultAPIBaseURL,
		CoverBaseURL: defaultCoverBaseURL,
		Client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type mangaSearchResponse struct {
	Result string `json:"result"`
	Data   []struct {
		ID         string `json:"id"`
		Attributes struct {
			Title map[string]string `json:"title"`
		} `json:"attributes"`
	} `json:"data"`
}

type coverListResponse struct {
	Result string `json:"result"`
	Data   []struct {
		Attributes struct {
			Volume   string `json:"volume"`
			FileName string `json:"fileName"`
		} `json:"attributes"`
	} `json:"data"`
}

// MangaID searches for a manga by title and returns the ID of the best
// match, or an empty string when nothing matches.
func (f *Fetcher) MangaID(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("limit", "1")

	var resp mangaSearchResponse
	if err := f.get(ctx, "/manga", q, &resp); err != nil {
		return "", fmt.Errorf("search manga %q: %w", title, err)
	}

	if resp.Result != "ok" || len(resp.Data) == 0 {
		return "", nil
	}
	return resp.Data[0].ID, nil
}

// VolumeCovers fetches the cover list for a manga and returns a URL per
// requested volume, plus the volumes no cover was found for. Covers
// without an integer volume attribute, fractional extras such as
// "8.5" included, are skipped; the first cover per volume wins.
func (f *Fetcher) VolumeCovers(ctx context.Context, mangaID string, volumes []int) (map[int]string, []int, error) {
	q := url.Values{}
	q.Set("manga[]", mangaID)
	q.Set("limit", "100")
	q.Set("order[volume]", "asc")

	var resp coverListResponse
	if err := f.get(ctx, "/cover", q, &resp); err != nil {
		return nil, volumes, fmt.Errorf("list covers: %w", err)
	}

	wanted := make(map[int]bool, len(volumes))
	for _, v := range volumes {
		wanted[v] = true
	}

	covers := make(map[int]string)
	if resp.Result == "ok" {
		for _, c := range resp.Data {
			vol, err := strconv.Atoi(c.Attributes.Volume)
			if err != nil {
				continue
			}
			if !wanted[vol] || covers[vol] != "" || c.Attributes.FileName == "" {
				continue
			}
			covers[vol] = fmt.Sprintf("%s/covers/%s/%s", f.CoverBaseURL, mangaID, c.Attributes.FileName)
		}
	}

	var missing []int
	for v := range wanted {
		if covers[v] == "" {
			missing = append(missing, v)
		}
	}
	sort.Ints(missing)

	return covers, missing, nil
}

// Covers resolves cover URLs for the given volumes of a manga title.
// An unresolvable title is not an error: the poster falls back to
// configured URLs and placeholders, so the result is simply empty.
func (f *Fetcher) Covers(ctx context.Context, title string, volumes []int) (map[int]string, []int, error) {
	if len(volumes) == 0 {
		return map[int]string{}, nil, nil
	}

	id, err := f.MangaID(ctx, title)
	if err != nil {
		return nil, volumes, err
	}
	if id == "" {
		return map[int]string{}, volumes, nil
	}

	return f.VolumeCovers(ctx, id, volumes)
}

func (f *Fetcher) get(ctx context.Context, path string, q url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.APIBaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// MergeCoverURLs layers the statically configured URL table over the
// fetched one: a volume pinned in the config always wins.
func MergeCoverURLs(fetched, configured map[int]string) map[int]string {
	merged := make(map[int]string, len(fetched)+len(configured))
	for v, u := range fetched {
		merged[v] = u
	}
	for v, u := range configured {
		merged[v] = u
	}
	return merged
}
