package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIDN_ToASCII(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"scheme and path", "http://例え.jp/path", "http://xn--r8jz45g.jp/path"},
		{"no path", "https://例え.jp", "https://xn--r8jz45g.jp"},
		{"query kept", "https://例え.jp/a/b?q=例え", "https://xn--r8jz45g.jp/a/b?q=例え"},
		{"bare host", "例え.jp", "xn--r8jz45g.jp"},
		{"bare host with path", "例え.jp/remote.php/webdav", "xn--r8jz45g.jp/remote.php/webdav"},
		{"ascii host untouched", "https://cloud.example.com/s/abc", "https://cloud.example.com/s/abc"},
		{"leading dot", ".例え.jp", ".xn--r8jz45g.jp"},
		{"leading dots collapse", "...例え.jp", ".xn--r8jz45g.jp"},
		{"empty", "", ""},
		{"empty host", "file:///tmp/x", "file:///tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertIDN(tt.url, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertIDN_ToUnicode(t *testing.T) {
	got, err := ConvertIDN("http://xn--r8jz45g.jp/path", false)
	require.NoError(t, err)
	assert.Equal(t, "http://例え.jp/path", got)
}

func TestConvertIDN_HostSegmentQuirks(t *testing.T) {
	// "//" wins over "@", so user-info and port are transcoded with the host.
	got, err := ConvertIDN("https://user:pw@例え.jp:8443/x", true)
	require.NoError(t, err)
	assert.Equal(t, "https://xn--user:pw@-v43gs37y.jp:8443/x", got)

	// Mapping lowercases the host, the scheme is untouched.
	got, err = ConvertIDN("HTTP://Example.COM/Path", false)
	require.NoError(t, err)
	assert.Equal(t, "HTTP://example.com/Path", got)
}

func TestConvertIDN_RoundTrip(t *testing.T) {
	urls := []string{
		"http://例え.jp/path",
		"https://bücher.example/ordner/datei.txt",
		"https://пример.рф",
		"cloud.例え.テスト/index.php",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			ascii, err := ConvertIDN(u, true)
			require.NoError(t, err)

			host := ascii
			if i := strings.Index(host, "//"); i >= 0 {
				host = host[i+2:]
			}
			if i := strings.Index(host, "/"); i >= 0 {
				host = host[:i]
			}
			for _, r := range host {
				assert.Less(t, r, rune(0x80), "host %q must be ASCII", host)
			}
			assert.Contains(t, host, "xn--")

			back, err := ConvertIDN(ascii, false)
			require.NoError(t, err)
			assert.Equal(t, u, back)
		})
	}
}

func TestConvertIDN_InvalidHost(t *testing.T) {
	longLabel := strings.Repeat("a", 64) + ".example.com"

	_, err := ConvertIDN("https://"+longLabel+"/x", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHostLabel)
	assert.Contains(t, err.Error(), longLabel)
}
