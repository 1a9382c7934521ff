package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/songbird-data/fixturectl/internal/errors"
	"github.com/songbird-data/fixturectl/internal/logging"
)

const (
	// DefaultRetries is the number of additional attempts after the first.
	DefaultRetries = 2

	// DefaultRetryDelay is the pause between attempts.
	DefaultRetryDelay = 2 * time.Second
)

// ProgressFunc reports bytes written so far. Total is -1 when the server
// does not send a Content-Length.
type ProgressFunc func(written, total int64)

// Client downloads the fixture archive. The zero value is not usable;
// construct with NewClient.
type Client struct {
	// HTTPClient performs the requests. Injectable for tests.
	HTTPClient *http.Client

	// Retries is the number of additional attempts after a failed one.
	Retries int

	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
}

// NewClient returns a Client with default retry policy. A zero timeout
// means no per-request timeout; callers bound the whole download with the
// context instead.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		Retries:    DefaultRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// Download fetches url and writes the body to dest, replacing any existing
// file there. The body is streamed to a sibling temp file and renamed into
// place, so dest is only ever the complete payload or the previous file.
// progress may be nil.
func (c *Client) Download(ctx context.Context, url, dest string, progress ProgressFunc) error {
	var lastErr error

	attempts := c.Retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			logging.Warn("retrying download", "attempt", attempt, "url", url, "error", lastErr)
			select {
			case <-time.After(c.RetryDelay):
			case <-ctx.Done():
				return errors.DownloadFailed(url, ctx.Err())
			}
		}

		lastErr = c.fetchOnce(ctx, url, dest, progress)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
	}

	return errors.DownloadFailed(url, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url, dest string, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp := dest + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	var w io.Writer = out
	if progress != nil {
		w = &progressWriter{w: out, total: resp.ContentLength, fn: progress}
	}

	written, err := io.Copy(w, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return err
	}

	logging.Debug("download complete", "url", url, "dest", filepath.Base(dest), "bytes", written)
	return nil
}

// progressWriter counts bytes and invokes the callback on every write.
type progressWriter struct {
	w       io.Writer
	written int64
	total   int64
	fn      ProgressFunc
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	p.fn(p.written, p.total)
	return n, err
}
