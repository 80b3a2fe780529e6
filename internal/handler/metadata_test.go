package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gatekit/internal/authapi"
	"gatekit/internal/authapi/mocks"
	"gatekit/internal/web"
)

func TestHandleServiceConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)

	document := `{"issuer":"https://op.example.com"}`
	api.EXPECT().
		ServiceConfiguration(gomock.Any(), &authapi.ServiceConfigurationRequest{Pretty: true}).
		Return(document, nil)

	res := newTestHandler(api, nil).HandleServiceConfiguration(context.Background(), true)

	require.NotNil(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, web.ContentTypeJSON, res.ContentType)
	assert.Equal(t, document, res.Body)
}

func TestHandleServiceJWKS(t *testing.T) {
	t.Run("document is served as JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		api.EXPECT().
			ServiceJWKS(gomock.Any(), false, false).
			Return(`{"keys":[]}`, nil)

		res := newTestHandler(api, nil).HandleServiceJWKS(context.Background(), false)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, `{"keys":[]}`, res.Body)
	})

	t.Run("empty document renders 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		api.EXPECT().
			ServiceJWKS(gomock.Any(), false, false).
			Return("", nil)

		res := newTestHandler(api, nil).HandleServiceJWKS(context.Background(), false)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Empty(t, res.Body)
	})

	t.Run("backend redirect is mirrored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		header := http.Header{}
		header.Set("Location", "https://keys.example.com/jwks.json")
		api.EXPECT().
			ServiceJWKS(gomock.Any(), false, false).
			Return("", &authapi.APIError{
				Path:       "/service/jwks/get",
				StatusCode: http.StatusFound,
				Header:     header,
				Err:        errors.New("unexpected status 302"),
			})

		res := newTestHandler(api, nil).HandleServiceJWKS(context.Background(), false)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "https://keys.example.com/jwks.json", res.Header.Get("Location"))
	})

	t.Run("other failures render the fixed diagnostic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		api.EXPECT().
			ServiceJWKS(gomock.Any(), false, false).
			Return("", errors.New("connection reset"))

		res := newTestHandler(api, nil).HandleServiceJWKS(context.Background(), false)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, serverErrorBody, res.Body)
	})
}

func TestHandleCredentialIssuerMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)

	api.EXPECT().
		CredentialIssuerMetadata(gomock.Any(), &authapi.CredentialIssuerMetadataRequest{}).
		Return(&authapi.CredentialIssuerMetadataResponse{
			Action:          authapi.CredentialIssuerMetadataActionOK,
			ResponseContent: `{"credential_issuer":"https://op.example.com"}`,
		}, nil)

	res := newTestHandler(api, nil).HandleCredentialIssuerMetadata(context.Background(), false)

	require.NotNil(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestHandleFederationConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)

	api.EXPECT().
		FederationConfiguration(gomock.Any(), &authapi.FederationConfigurationRequest{
			EntityTypes: []string{"openid_provider"},
		}).
		Return(&authapi.FederationConfigurationResponse{
			Action:          authapi.FederationConfigurationActionOK,
			ResponseContent: "eyJraWQiOi.payload.sig",
		}, nil)

	res := newTestHandler(api, nil).HandleFederationConfiguration(context.Background(), []string{"openid_provider"})

	require.NotNil(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, web.ContentTypeEntityStatement, res.ContentType)
}

func TestHandlePushedAuthReq(t *testing.T) {
	t.Run("created with DPoP nonce echoed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		api.EXPECT().
			PushAuthorizationRequest(gomock.Any(), &authapi.PushedAuthReqRequest{
				Parameters:   "response_type=code&client_id=c1",
				ClientID:     "c1",
				ClientSecret: "secret",
				Dpop:         "eyJ0eXAiOi.payload.sig",
			}).
			Return(&authapi.PushedAuthReqResponse{
				Action:          authapi.PushedAuthReqActionCreated,
				ResponseContent: `{"request_uri":"urn:ietf:params:oauth:request_uri:abc","expires_in":600}`,
				DpopNonce:       "nonce-1",
			}, nil)

		res := newTestHandler(api, nil).HandlePushedAuthReq(context.Background(), PushedAuthReq{
			Parameters:  "response_type=code&client_id=c1",
			Credentials: web.Credentials{UserID: "c1", Password: "secret"},
			DPoP:        "eyJ0eXAiOi.payload.sig",
		})

		require.NotNil(t, res)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Equal(t, "nonce-1", res.Header.Get("DPoP-Nonce"))
	})

	t.Run("nonce is echoed on error statuses too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		api.EXPECT().
			PushAuthorizationRequest(gomock.Any(), gomock.Any()).
			Return(&authapi.PushedAuthReqResponse{
				Action:          authapi.PushedAuthReqActionBadRequest,
				ResponseContent: `{"error":"use_dpop_nonce"}`,
				DpopNonce:       "nonce-2",
			}, nil)

		res := newTestHandler(api, nil).HandlePushedAuthReq(context.Background(), PushedAuthReq{
			Parameters: "response_type=code",
		})

		require.NotNil(t, res)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "nonce-2", res.Header.Get("DPoP-Nonce"))
	})
}
