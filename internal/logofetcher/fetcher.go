package logofetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"refspot_backend/internal/imageprocessor"
	"refspot_backend/internal/logger"
	"refspot_backend/internal/storage"

	"github.com/google/uuid"
)

const (
	logoFolder = "company_logos"

	// responses smaller than this are placeholder favicons, not logos
	minImageBytes = 200

	logoTimeout    = 10 * time.Second
	faviconTimeout = 8 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Fetcher resolves a company name to a stored logo asset. Fetch returns
// the stored filename, or "" on any failure; it never blocks the write
// that triggered it.
type Fetcher interface {
	Fetch(ctx context.Context, companyName string) string
	Delete(ctx context.Context, filename string)
}

// HTTPFetcher pulls logos from public logo/favicon endpoints.
type HTTPFetcher struct {
	client    *http.Client
	processor *imageprocessor.Processor
	store     storage.Storage
}

func NewHTTPFetcher(store storage.Storage, processor *imageprocessor.Processor) *HTTPFetcher {
	return &HTTPFetcher{
		// per-request timeouts are set via context; the client timeout is
		// an upper bound safety net
		client:    &http.Client{Timeout: logoTimeout},
		processor: processor,
		store:     store,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, companyName string) string {
	if len(strings.TrimSpace(companyName)) < 2 {
		return ""
	}

	// logo-by-domain first (better quality), favicon endpoints as fallback
	data := f.fetchFromLogoAPI(ctx, companyName)
	if data == nil {
		data = f.fetchFromFavicons(ctx, companyName)
	}
	if data == nil {
		return ""
	}

	filename, err := f.save(ctx, data, companyName)
	if err != nil {
		logger.CtxDebug(ctx, "failed to save company logo", "company", companyName, "error", err)
		return ""
	}
	return filename
}

// Delete removes a previously stored logo asset. Best-effort.
func (f *HTTPFetcher) Delete(ctx context.Context, filename string) {
	if filename == "" {
		return
	}
	if err := f.store.Delete(ctx, logoFolder+"/"+filename); err != nil {
		logger.CtxDebug(ctx, "failed to delete company logo", "filename", filename, "error", err)
	}
}

func (f *HTTPFetcher) fetchFromLogoAPI(ctx context.Context, companyName string) []byte {
	for _, domain := range CandidateDomains(companyName) {
		url := "https://logo.clearbit.com/" + domain
		if data := f.tryFetch(ctx, url, logoTimeout); data != nil {
			return data
		}
	}
	return nil
}

func (f *HTTPFetcher) fetchFromFavicons(ctx context.Context, companyName string) []byte {
	for _, domain := range CandidateDomains(companyName) {
		faviconURLs := []string{
			"https://www.google.com/s2/favicons?domain=" + domain + "&sz=128",
			"https://logo.clearbit.com/" + domain,
			"https://" + domain + "/favicon.ico",
			"https://" + domain + "/favicon.png",
			"https://" + domain + "/apple-touch-icon.png",
			"https://" + domain + "/android-chrome-192x192.png",
		}

		for _, url := range faviconURLs {
			if data := f.tryFetch(ctx, url, faviconTimeout); data != nil {
				return data
			}
		}
	}
	return nil
}

// tryFetch returns the body when the response is a plausible image,
// nil otherwise. Errors are swallowed: a miss on one endpoint just
// moves on to the next.
func (f *HTTPFetcher) tryFetch(ctx context.Context, url string, timeout time.Duration) []byte {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil || len(data) <= minImageBytes {
		return nil
	}
	return data
}

// save normalizes the raw image to a bounded white-background JPEG
// thumbnail and persists it under an opaque generated filename.
func (f *HTTPFetcher) save(ctx context.Context, data []byte, companyName string) (string, error) {
	thumb, err := f.processor.FlattenToJPEG(data, imageprocessor.SizeLogo)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("auto_%s_%s.jpg", uuid.NewString()[:8], slug(companyName))
	if err := f.store.Save(ctx, logoFolder+"/"+filename, bytes.NewReader(thumb), "image/jpeg"); err != nil {
		return "", err
	}
	return filename, nil
}

// DisabledFetcher is wired when logo fetching is turned off in config.
type DisabledFetcher struct{}

func (d *DisabledFetcher) Fetch(ctx context.Context, companyName string) string { return "" }

func (d *DisabledFetcher) Delete(ctx context.Context, filename string) {}
