package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractClientCertificate(t *testing.T) {
	tests := []struct {
		name       string
		structured string
		legacy     string
		want       string
	}{
		{
			name:       "structured header strips byte-sequence delimiters",
			structured: ":MIIBfDCCASq=:",
			want:       "MIIBfDCCASq=",
		},
		{
			name:       "structured header wins over legacy",
			structured: ":structured-cert:",
			legacy:     "legacy-cert",
			want:       "structured-cert",
		},
		{
			name:       "undelimited structured value falls through to legacy",
			structured: "no-delimiters",
			legacy:     "legacy-cert",
			want:       "legacy-cert",
		},
		{
			name:   "legacy header passes through",
			legacy: "-----BEGIN CERTIFICATE-----\nabc\n-----END CERTIFICATE-----",
			want:   "-----BEGIN CERTIFICATE-----\nabc\n-----END CERTIFICATE-----",
		},
		{
			name:   "null placeholder degrades to absent",
			legacy: "(null)",
			want:   "",
		},
		{
			name:   "url-encoded pem is decoded",
			legacy: "-----BEGIN%20CERTIFICATE-----%0Aabc%0A-----END%20CERTIFICATE-----",
			want:   "-----BEGIN CERTIFICATE-----\nabc\n-----END CERTIFICATE-----",
		},
		{
			name: "both absent",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractClientCertificate(tt.structured, tt.legacy))
		})
	}
}
