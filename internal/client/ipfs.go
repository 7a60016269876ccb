package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
)

// ErrHTTP is returned for non-200 responses from external HTTP services
type ErrHTTP struct {
	Status int
	URL    string
}

func (e ErrHTTP) Error() string {
	return fmt.Sprintf("HTTP error: status %d from %s", e.Status, e.URL)
}

// NewIPFSShell returns a shell talking to the IPFS node HTTP API at apiURL
func NewIPFSShell(apiURL string, timeout time.Duration) *shell.Shell {
	sh := shell.NewShellWithClient(apiURL, &http.Client{Timeout: timeout})
	sh.SetTimeout(timeout)
	return sh
}

// GatewayReader reads content through an HTTP gateway in path resolution style
type GatewayReader struct {
	Host   string
	Client *http.Client
}

// NewGatewayReader returns a reader for the gateway at host (e.g. https://ipfs.io/ipfs)
func NewGatewayReader(host string, timeout time.Duration) GatewayReader {
	return GatewayReader{
		Host:   strings.TrimRight(host, "/"),
		Client: &http.Client{Timeout: timeout},
	}
}

// Do fetches cid and returns the body with the response headers.
// The caller must close the body.
func (r GatewayReader) Do(ctx context.Context, cid string) (io.ReadCloser, http.Header, error) {
	u := r.URL(cid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, ErrHTTP{Status: resp.StatusCode, URL: u}
	}
	return resp.Body, resp.Header, nil
}

// URL returns the gateway URL for a CID
func (r GatewayReader) URL(cid string) string {
	return fmt.Sprintf("%s/%s", r.Host, strings.TrimPrefix(cid, "ipfs://"))
}
