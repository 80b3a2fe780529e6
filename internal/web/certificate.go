package web

import (
	"net/url"
	"strings"
)

// Client certificate header names. HeaderClientCert carries a byte-sequence
// encoded certificate per RFC 9440; HeaderLegacyClientCert is the single
// value header set by older reverse proxies.
const (
	HeaderClientCert       = "Client-Cert"
	HeaderLegacyClientCert = "X-Ssl-Cert"
)

// Reverse proxies that cannot suppress the header on plain connections send
// this placeholder instead of a certificate.
const nullCertificate = "(null)"

// Prefix of a PEM block that went through URL encoding on its way in.
const urlEncodedPEMPrefix = "-----BEGIN%20CERTIFICATE-----"

// ExtractClientCertificate normalizes a client certificate out of the
// structured header (preferred) or the legacy header. Placeholder values
// degrade to absent and URL-encoded PEM blocks are decoded; any other format
// passes through untouched.
func ExtractClientCertificate(structured, legacy string) string {
	if cert := normalizeStructuredCert(structured); cert != "" {
		return cert
	}
	return normalizeCertValue(legacy)
}

// normalizeStructuredCert strips the surrounding byte-sequence delimiters of
// an RFC 9440 header value.
func normalizeStructuredCert(value string) string {
	if len(value) < 2 || !strings.HasPrefix(value, ":") || !strings.HasSuffix(value, ":") {
		return ""
	}
	return normalizeCertValue(value[1 : len(value)-1])
}

func normalizeCertValue(value string) string {
	if value == "" || value == nullCertificate {
		return ""
	}

	if strings.HasPrefix(value, urlEncodedPEMPrefix) {
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			// Not actually URL-encoded; keep the raw value.
			return value
		}
		return decoded
	}
	return value
}
