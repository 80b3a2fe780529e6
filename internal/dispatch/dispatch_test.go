package dispatch

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekit/internal/authapi"
	"gatekit/internal/web"
)

func TestUnknownActionNamesTheBackendCall(t *testing.T) {
	res := UnknownAction(PathToken)

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t,
		`{"error":"server_error","error_description":"The /auth/token call returned an unknown action."}`,
		res.Body)
}

func TestTableFallsBackToUnknownAction(t *testing.T) {
	res := Token(authapi.TokenAction("NOT_A_REAL_ACTION"), "ignored")

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Body, PathToken)
	assert.NotContains(t, res.Body, "ignored")
}

func TestToken(t *testing.T) {
	t.Run("invalid client carries a basic challenge", func(t *testing.T) {
		res := Token(authapi.TokenActionInvalidClient, `{"error":"invalid_client"}`)

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, `Basic realm="token"`, res.Header.Get("WWW-Authenticate"))
		assert.Equal(t, `{"error":"invalid_client"}`, res.Body)
	})

	t.Run("ok returns the token response as JSON", func(t *testing.T) {
		res := Token(authapi.TokenActionOK, `{"access_token":"abc"}`)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, web.ContentTypeJSON, res.ContentType)
	})

	t.Run("reissuable id token passes through as a plain token response", func(t *testing.T) {
		res := Token(authapi.TokenActionIDTokenReissuable, `{"access_token":"abc"}`)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, `{"access_token":"abc"}`, res.Body)
	})
}

func TestRevocationOKKeepsJavaScriptContentType(t *testing.T) {
	res := Revocation(authapi.RevocationActionOK, "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, web.ContentTypeJavaScript, res.ContentType)
}

func TestAuthorizationLocation(t *testing.T) {
	res := AuthorizationError(authapi.AuthorizationActionLocation, "https://client.example.com/cb?error=login_required")

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "https://client.example.com/cb?error=login_required", res.Header.Get("Location"))
}

func TestUserInfoErrorsAreChallenges(t *testing.T) {
	challenge := `Bearer error="invalid_token",error_description="The access token expired."`
	res := UserInfoError(authapi.UserInfoActionUnauthorized, challenge)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, challenge, res.Header.Get("WWW-Authenticate"))
	assert.Empty(t, res.Body)
}

func TestUserInfoIssueRendersDocuments(t *testing.T) {
	t.Run("json document", func(t *testing.T) {
		res := UserInfoIssue(authapi.UserInfoIssueActionJSON, `{"sub":"alice"}`)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, web.ContentTypeJSON, res.ContentType)
	})

	t.Run("jwt document", func(t *testing.T) {
		res := UserInfoIssue(authapi.UserInfoIssueActionJWT, "eyJhbGciOi.payload.sig")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, web.ContentTypeJWT, res.ContentType)
	})
}

func TestPushedAuthReq(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		res := PushedAuthReq(authapi.PushedAuthReqActionCreated, `{"request_uri":"urn:ietf:params:oauth:request_uri:abc"}`)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})

	t.Run("unauthorized carries a basic challenge", func(t *testing.T) {
		res := PushedAuthReq(authapi.PushedAuthReqActionUnauthorized, `{"error":"invalid_client"}`)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, `Basic realm="par"`, res.Header.Get("WWW-Authenticate"))
	})

	t.Run("payload too large", func(t *testing.T) {
		res := PushedAuthReq(authapi.PushedAuthReqActionPayloadTooLarge, `{"error":"invalid_request"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
	})
}

func TestFederationRendersEntityStatements(t *testing.T) {
	res := FederationConfiguration(authapi.FederationConfigurationActionOK, "eyJraWQiOi.payload.sig")

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, web.ContentTypeEntityStatement, res.ContentType)
}

// Every endpoint family treats a code outside its table the same way.
func TestEveryTableRejectsUnknownCodes(t *testing.T) {
	responses := []*web.Response{
		AuthorizationError(authapi.AuthorizationAction("X"), ""),
		AuthorizationIssue(authapi.AuthorizationIssueAction("X"), ""),
		AuthorizationFail(authapi.AuthorizationFailAction("X"), ""),
		Token(authapi.TokenAction("X"), ""),
		TokenIssue(authapi.TokenIssueAction("X"), ""),
		TokenFail(authapi.TokenFailAction("X"), ""),
		Revocation(authapi.RevocationAction("X"), ""),
		StandardIntrospection(authapi.StandardIntrospectionAction("X"), ""),
		UserInfoError(authapi.UserInfoAction("X"), ""),
		UserInfoIssue(authapi.UserInfoIssueAction("X"), ""),
		PushedAuthReq(authapi.PushedAuthReqAction("X"), ""),
		CredentialIssuerMetadata(authapi.CredentialIssuerMetadataAction("X"), ""),
		CredentialIssuerJWKS(authapi.CredentialIssuerJWKSAction("X"), ""),
		CredentialJWTIssuerMetadata(authapi.CredentialJWTIssuerMetadataAction("X"), ""),
		FederationConfiguration(authapi.FederationConfigurationAction("X"), ""),
		FederationRegistration(authapi.FederationRegistrationAction("X"), ""),
	}

	for _, res := range responses {
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Contains(t, res.Body, "returned an unknown action")
	}
}
