package alphavantage

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/shlok12343/stockfolio/date"
)

// diskCache implements a simple disk cache for HTTP responses. The cache key
// includes the current date, so entries expire daily; Alpha Vantage's free
// tier rations requests and daily closes do not change intraday.
type diskCache struct {
	base http.RoundTripper
}

// newCachingClient returns an http.Client whose GET responses are cached on
// disk for the rest of the day.
func newCachingClient() *http.Client {
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport}}
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response on disk and rewinds it for the caller.
func (c *diskCache) put(key string, resp *http.Response) error {
	dump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(os.TempDir(), key), dump, 0600); err != nil {
		return err
	}
	// The dump consumed the body; re-read it from the dumped bytes.
	restored, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(dump)), resp.Request)
	if err != nil {
		return err
	}
	*resp = *restored
	return nil
}
