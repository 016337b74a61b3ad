// Package httpclient builds the HTTP clients used to reach model APIs. The
// safer variant refuses private addresses and unexpected schemes, which
// matters because the remote endpoint URL comes from configuration.
package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/autodoc-ai/autodoc/errors"
)

const maxRedirects = 10

// SaferClient wraps http.Client with SSRF protection.
type SaferClient struct {
	*http.Client
	blockPrivateIP bool
}

// NewSaferClient returns a client that blocks private and loopback
// addresses, both in the request URL and after DNS resolution. Use it for
// endpoints that should always be on the public internet.
func NewSaferClient(timeout time.Duration) *SaferClient {
	c := &SaferClient{
		Client:         &http.Client{Timeout: timeout},
		blockPrivateIP: true,
	}
	c.CheckRedirect = c.checkRedirect
	c.Transport = guardedTransport()
	return c
}

// NewLocalClient returns a plain client with the same timeout and redirect
// policy but no address restrictions. Local inference endpoints live on
// loopback, so the private-IP guard cannot apply to them.
func NewLocalClient(timeout time.Duration) *SaferClient {
	c := &SaferClient{
		Client: &http.Client{Timeout: timeout},
	}
	c.CheckRedirect = c.checkRedirect
	return c
}

func (c *SaferClient) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errors.Newf("stopped after %d redirects", maxRedirects)
	}
	if err := c.validateURL(req.URL); err != nil {
		return errors.Wrap(err, "redirect blocked")
	}
	return nil
}

// guardedTransport re-checks resolved IPs at dial time, which closes the
// DNS rebinding hole URL validation alone leaves open.
func guardedTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, _, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, errors.Wrap(err, "invalid address")
			}
			ips, err := net.DefaultResolver.LookupIP(ctx, "ip", host)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve host %q", host)
			}
			for _, ip := range ips {
				if isPrivateIP(ip) {
					return nil, errors.Newf("private IP address blocked: %s", ip)
				}
			}
			return dialer.DialContext(ctx, network, addr)
		},
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// ValidateURL parses and validates a URL string before a request is built.
func (c *SaferClient) ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid URL")
	}
	if err := c.validateURL(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *SaferClient) validateURL(u *url.URL) error {
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return errors.Newf("scheme %q not allowed", scheme)
	}

	// http://evil.com@localhost/ style confusion
	if strings.Contains(u.String(), "@") {
		return errors.New("URL contains @ character (potential SSRF attempt)")
	}

	hostname := u.Hostname()
	if hostname == "" {
		return errors.New("URL missing hostname")
	}

	if c.blockPrivateIP {
		if isLocalhost(hostname) {
			return errors.New("localhost access blocked")
		}
		if ip := net.ParseIP(hostname); ip != nil && isPrivateIP(ip) {
			return errors.Newf("private IP address blocked: %s", hostname)
		}
	}
	return nil
}

func isLocalhost(hostname string) bool {
	h := strings.ToLower(hostname)
	return h == "localhost" || h == "localhost.localdomain" || strings.HasSuffix(h, ".localhost")
}

// isPrivateIP reports whether an IP is in a private or special-use range.
func isPrivateIP(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		blocks := []net.IPNet{
			{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
			{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
			{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
			{IP: net.IPv4(127, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
			{IP: net.IPv4(169, 254, 0, 0), Mask: net.CIDRMask(16, 32)},
			{IP: net.IPv4(0, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
			{IP: net.IPv4(224, 0, 0, 0), Mask: net.CIDRMask(4, 32)},
			{IP: net.IPv4(240, 0, 0, 0), Mask: net.CIDRMask(4, 32)},
		}
		for _, block := range blocks {
			if block.Contains(ip4) {
				return true
			}
		}
		return false
	}

	return ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() || ip.IsUnspecified()
}
