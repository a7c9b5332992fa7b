package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	resty "gopkg.in/resty.v1"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
)

// fetcher reads input documents from stdin, a local file or an HTTP URL.
type fetcher struct {
	client *resty.Client
	stdin  io.Reader
}

func newFetcher(cfg config.FetchConfig) *fetcher {
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond).
		SetRetryCount(cfg.RetryCount)
	return &fetcher{client: client, stdin: os.Stdin}
}

// fetch returns the raw document named by source: "-" is stdin, http(s)
// URLs are downloaded, anything else is a file path.
func (f *fetcher) fetch(source string) ([]byte, error) {
	switch {
	case source == "" || source == "-":
		return io.ReadAll(f.stdin)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		resp, err := f.client.R().Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode(), source)
		}
		return resp.Body(), nil
	default:
		return os.ReadFile(source)
	}
}
