package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"fragma/internal/domain"
)

// HTTP is a relay client over a base URL.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the relay at base.
func NewHTTP(base string) *HTTP { return &HTTP{Base: base, HTTP: http.DefaultClient} }

// Push enqueues one fragment on the named channel.
func (c *HTTP) Push(ctx context.Context, channel string, frag domain.Fragment) error {
	u := c.Base + "/channel/" + url.PathEscape(channel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(frag))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay post %s: %s", u, resp.Status)
	}
	return nil
}

// Pull dequeues the oldest fragment from the named channel. The second return
// is false when the channel is empty.
func (c *HTTP) Pull(ctx context.Context, channel string) (domain.Fragment, bool, error) {
	u := c.Base + "/channel/" + url.PathEscape(channel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		return nil, false, nil
	}
	if resp.StatusCode/100 != 2 {
		return nil, false, fmt.Errorf("relay get %s: %s", u, resp.Status)
	}
	frag, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}
	return frag, true, nil
}

var _ domain.Channel = (*HTTP)(nil)
