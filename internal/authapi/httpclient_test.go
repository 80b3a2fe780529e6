package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientPostsJSONWithBearerToken(t *testing.T) {
	var got struct {
		authorization string
		contentType   string
		path          string
		body          AuthorizationRequest
	}

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.authorization = r.Header.Get("Authorization")
		got.contentType = r.Header.Get("Content-Type")
		got.path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))

		_ = json.NewEncoder(w).Encode(AuthorizationResponse{
			Action: AuthorizationActionInteraction,
			Ticket: "ticket-1",
		})
	}))
	defer backend.Close()

	client := NewHTTPClient(backend.URL, "service-token")
	res, err := client.Authorization(context.Background(), &AuthorizationRequest{Parameters: "response_type=code"})

	require.NoError(t, err)
	assert.Equal(t, AuthorizationActionInteraction, res.Action)
	assert.Equal(t, "ticket-1", res.Ticket)
	assert.Equal(t, "Bearer service-token", got.authorization)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, "/api/auth/authorization", got.path)
	assert.Equal(t, "response_type=code", got.body.Parameters)
}

func TestHTTPClientNon2xxIsAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	client := NewHTTPClient(backend.URL, "bad-token")
	_, err := client.Token(context.Background(), &TokenRequest{Parameters: "grant_type=authorization_code"})

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "/api/auth/token", apiErr.Path)
}

func TestHTTPClientDoesNotFollowRedirects(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/service/jwks/get" {
			w.Header().Set("Location", "https://keys.example.com/jwks.json")
			w.WriteHeader(http.StatusFound)
			return
		}
		t.Errorf("redirect was followed to %s", r.URL.Path)
	}))
	defer backend.Close()

	client := NewHTTPClient(backend.URL, "service-token")
	_, err := client.ServiceJWKS(context.Background(), false, false)

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusFound, apiErr.StatusCode)
	assert.Equal(t, "https://keys.example.com/jwks.json", apiErr.Header.Get("Location"))
}

func TestHTTPClientGetEncodesQuery(t *testing.T) {
	var gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"issuer":"https://op.example.com"}`))
	}))
	defer backend.Close()

	client := NewHTTPClient(backend.URL, "service-token")
	document, err := client.ServiceConfiguration(context.Background(), &ServiceConfigurationRequest{Pretty: true})

	require.NoError(t, err)
	assert.Equal(t, `{"issuer":"https://op.example.com"}`, document)
	assert.Equal(t, "pretty=true", gotQuery)
}

func TestHTTPClientTransportFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	backend.Close() // refuse connections

	client := NewHTTPClient(backend.URL, "service-token")
	_, err := client.Revocation(context.Background(), &RevocationRequest{Parameters: "token=tok"})

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Zero(t, apiErr.StatusCode)
	assert.Error(t, apiErr.Err)
}
