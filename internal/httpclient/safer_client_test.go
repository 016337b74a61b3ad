package httpclient

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	c := NewSaferClient(10 * time.Second)

	t.Run("public https allowed", func(t *testing.T) {
		_, err := c.ValidateURL("https://openrouter.ai/api/v1/chat/completions")
		assert.NoError(t, err)
	})

	blocked := []struct {
		name string
		url  string
	}{
		{"localhost", "http://localhost:11434/v1"},
		{"loopback ip", "http://127.0.0.1:8080/"},
		{"private 10/8", "http://10.1.2.3/"},
		{"private 192.168/16", "http://192.168.1.1/"},
		{"link local", "http://169.254.169.254/latest/meta-data/"},
		{"credential confusion", "https://evil.com@localhost/"},
		{"file scheme", "file:///etc/passwd"},
		{"gopher scheme", "gopher://example.com/"},
		{"missing hostname", "https:///path"},
	}
	for _, tc := range blocked {
		t.Run(tc.name+" blocked", func(t *testing.T) {
			_, err := c.ValidateURL(tc.url)
			require.Error(t, err)
		})
	}
}

func TestLocalClientAllowsLoopback(t *testing.T) {
	c := NewLocalClient(10 * time.Second)

	_, err := c.ValidateURL("http://localhost:11434/v1")
	assert.NoError(t, err)

	_, err = c.ValidateURL("http://127.0.0.1:11434/v1")
	assert.NoError(t, err)

	// scheme and redirect rules still apply
	_, err = c.ValidateURL("file:///etc/passwd")
	require.Error(t, err)
}

func TestIsPrivateIP(t *testing.T) {
	private := []string{"10.0.0.1", "172.16.5.5", "192.168.0.10", "127.0.0.1", "169.254.1.1", "0.0.0.0", "224.0.0.1", "::1", "fe80::1"}
	for _, s := range private {
		assert.True(t, isPrivateIP(net.ParseIP(s)), s)
	}

	public := []string{"8.8.8.8", "1.1.1.1", "93.184.216.34", "2606:4700:4700::1111"}
	for _, s := range public {
		assert.False(t, isPrivateIP(net.ParseIP(s)), s)
	}
}
