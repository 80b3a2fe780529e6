package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 10 * time.Second

// HTTPClient is the production Client implementation: one synchronous HTTP
// call per operation against the backend's REST surface, authenticated with
// the service access token. Redirect statuses are surfaced as *APIError
// rather than followed, since the JWKS flow treats a 302 as data.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client. The replacement must
// not follow redirects or the JWKS 302 case is lost.
func WithHTTPClient(client *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		if client != nil {
			c.client = client
		}
	}
}

// NewHTTPClient constructs a backend client. baseURL is the origin of the
// backend API, token the service access token presented as a Bearer token.
func NewHTTPClient(baseURL, token string, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &APIError{Path: path, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &APIError{Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.client.Do(req)
	if err != nil {
		return &APIError{Path: path, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Path: path, StatusCode: res.StatusCode, Header: res.Header.Clone()}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &APIError{Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values) (string, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &APIError{Path: path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.client.Do(req)
	if err != nil {
		return "", &APIError{Path: path, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &APIError{Path: path, StatusCode: res.StatusCode, Header: res.Header.Clone()}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &APIError{Path: path, Err: fmt.Errorf("read response: %w", err)}
	}
	return string(body), nil
}

func (c *HTTPClient) Authorization(ctx context.Context, req *AuthorizationRequest) (*AuthorizationResponse, error) {
	var res AuthorizationResponse
	if err := c.post(ctx, "/api/auth/authorization", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) AuthorizationIssue(ctx context.Context, req *AuthorizationIssueRequest) (*AuthorizationIssueResponse, error) {
	var res AuthorizationIssueResponse
	if err := c.post(ctx, "/api/auth/authorization/issue", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) AuthorizationFail(ctx context.Context, req *AuthorizationFailRequest) (*AuthorizationFailResponse, error) {
	var res AuthorizationFailResponse
	if err := c.post(ctx, "/api/auth/authorization/fail", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Token(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	var res TokenResponse
	if err := c.post(ctx, "/api/auth/token", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) TokenIssue(ctx context.Context, req *TokenIssueRequest) (*TokenIssueResponse, error) {
	var res TokenIssueResponse
	if err := c.post(ctx, "/api/auth/token/issue", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) TokenFail(ctx context.Context, req *TokenFailRequest) (*TokenFailResponse, error) {
	var res TokenFailResponse
	if err := c.post(ctx, "/api/auth/token/fail", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Revocation(ctx context.Context, req *RevocationRequest) (*RevocationResponse, error) {
	var res RevocationResponse
	if err := c.post(ctx, "/api/auth/revocation", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Introspection(ctx context.Context, req *IntrospectionRequest) (*IntrospectionResponse, error) {
	var res IntrospectionResponse
	if err := c.post(ctx, "/api/auth/introspection", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) StandardIntrospection(ctx context.Context, req *StandardIntrospectionRequest) (*StandardIntrospectionResponse, error) {
	var res StandardIntrospectionResponse
	if err := c.post(ctx, "/api/auth/introspection/standard", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UserInfo(ctx context.Context, req *UserInfoRequest) (*UserInfoResponse, error) {
	var res UserInfoResponse
	if err := c.post(ctx, "/api/auth/userinfo", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UserInfoIssue(ctx context.Context, req *UserInfoIssueRequest) (*UserInfoIssueResponse, error) {
	var res UserInfoIssueResponse
	if err := c.post(ctx, "/api/auth/userinfo/issue", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) PushAuthorizationRequest(ctx context.Context, req *PushedAuthReqRequest) (*PushedAuthReqResponse, error) {
	var res PushedAuthReqResponse
	if err := c.post(ctx, "/api/pushed_auth_req", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ServiceConfiguration(ctx context.Context, req *ServiceConfigurationRequest) (string, error) {
	query := url.Values{}
	if req != nil && req.Pretty {
		query.Set("pretty", "true")
	}
	return c.get(ctx, "/api/service/configuration", query)
}

func (c *HTTPClient) ServiceJWKS(ctx context.Context, pretty, includePrivate bool) (string, error) {
	query := url.Values{}
	query.Set("pretty", strconv.FormatBool(pretty))
	query.Set("includePrivateKeys", strconv.FormatBool(includePrivate))
	return c.get(ctx, "/api/service/jwks/get", query)
}

func (c *HTTPClient) CredentialIssuerMetadata(ctx context.Context, req *CredentialIssuerMetadataRequest) (*CredentialIssuerMetadataResponse, error) {
	var res CredentialIssuerMetadataResponse
	if err := c.post(ctx, "/api/vci/metadata", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CredentialIssuerJWKS(ctx context.Context, req *CredentialIssuerJWKSRequest) (*CredentialIssuerJWKSResponse, error) {
	var res CredentialIssuerJWKSResponse
	if err := c.post(ctx, "/api/vci/jwks", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CredentialJWTIssuerMetadata(ctx context.Context, req *CredentialJWTIssuerMetadataRequest) (*CredentialJWTIssuerMetadataResponse, error) {
	var res CredentialJWTIssuerMetadataResponse
	if err := c.post(ctx, "/api/vci/jwtissuer", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) FederationConfiguration(ctx context.Context, req *FederationConfigurationRequest) (*FederationConfigurationResponse, error) {
	var res FederationConfigurationResponse
	if err := c.post(ctx, "/api/federation/configuration", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) FederationRegistration(ctx context.Context, req *FederationRegistrationRequest) (*FederationRegistrationResponse, error) {
	var res FederationRegistrationResponse
	if err := c.post(ctx, "/api/federation/registration", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
