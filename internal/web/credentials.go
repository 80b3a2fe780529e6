package web

import (
	"encoding/base64"
	"regexp"
	"strings"
)

var (
	basicPattern  = regexp.MustCompile(`(?i)^basic *([^ ]+) *$`)
	bearerPattern = regexp.MustCompile(`(?i)^bearer *([^ ]+) *$`)
	dpopPattern   = regexp.MustCompile(`(?i)^dpop *([^ ]+) *$`)
)

// Credentials is a client ID / secret pair extracted from an Authorization
// header. Absent values are empty strings; malformed input never fails, it
// degrades to absent so downstream code always sees a well-formed value.
type Credentials struct {
	UserID   string
	Password string
}

// ParseBasicCredentials extracts Basic credentials from an Authorization
// header value. The scheme match is case-insensitive. A missing or
// non-matching header, or an undecodable token, yields zero-value
// Credentials. A decoded payload without a colon yields an empty password.
func ParseBasicCredentials(authorization string) Credentials {
	m := basicPattern.FindStringSubmatch(authorization)
	if m == nil {
		return Credentials{}
	}

	decoded, err := base64.StdEncoding.DecodeString(m[1])
	if err != nil {
		return Credentials{}
	}

	userID, password, _ := strings.Cut(string(decoded), ":")
	return Credentials{UserID: userID, Password: password}
}

// ExtractAccessToken pulls a bearer token out of an Authorization header
// value, accepting the Bearer scheme first and the DPoP scheme second. The
// first matching scheme wins; no match yields "".
func ExtractAccessToken(authorization string) string {
	if m := bearerPattern.FindStringSubmatch(authorization); m != nil {
		return m[1]
	}
	if m := dpopPattern.FindStringSubmatch(authorization); m != nil {
		return m[1]
	}
	return ""
}
