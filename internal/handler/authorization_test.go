package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gatekit/internal/audit"
	auditmemory "gatekit/internal/audit/store/memory"
	"gatekit/internal/authapi"
	"gatekit/internal/authapi/mocks"
	spimocks "gatekit/internal/spi/mocks"
	"gatekit/pkg/requestcontext"
)

func newTestHandler(api authapi.Client, sink *auditmemory.Store) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var emitter audit.Emitter
	if sink != nil {
		emitter = audit.NewPublisher(sink, logger)
	}
	return New(api, logger, nil, emitter)
}

// authenticatedUser wires a mock provider that reports a logged-in alice.
func authenticatedUser(ctrl *gomock.Controller, authTime int64) *spimocks.MockNoInteractionProvider {
	provider := spimocks.NewMockNoInteractionProvider(ctrl)
	provider.EXPECT().UserAuthenticated(gomock.Any()).Return(true).AnyTimes()
	provider.EXPECT().UserAuthenticatedAt(gomock.Any()).Return(authTime).AnyTimes()
	provider.EXPECT().UserSubject(gomock.Any()).Return("alice").AnyTimes()
	provider.EXPECT().ACR(gomock.Any()).Return("").AnyTimes()
	provider.EXPECT().Sub(gomock.Any()).Return("").AnyTimes()
	provider.EXPECT().Properties(gomock.Any()).Return(nil).AnyTimes()
	provider.EXPECT().Scopes(gomock.Any()).Return(nil).AnyTimes()
	provider.EXPECT().UserClaimValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return provider
}

func TestHandleAuthorizationBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)
	api.EXPECT().
		Authorization(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused"))

	res, pending := newTestHandler(api, nil).HandleAuthorization(context.Background(), "response_type=code", nil)

	require.NotNil(t, res)
	assert.Nil(t, pending)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, serverErrorBody, res.Body)
	assert.NotContains(t, res.Body, "connection refused")
}

func TestHandleAuthorizationInteractionIsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)
	api.EXPECT().
		Authorization(gomock.Any(), &authapi.AuthorizationRequest{Parameters: "response_type=code&client_id=c1"}).
		Return(&authapi.AuthorizationResponse{
			Action: authapi.AuthorizationActionInteraction,
			Ticket: "ticket-1",
		}, nil)

	res, pending := newTestHandler(api, nil).HandleAuthorization(context.Background(), "response_type=code&client_id=c1", nil)

	assert.Nil(t, res)
	require.NotNil(t, pending)
	assert.Equal(t, "ticket-1", pending.Ticket)
}

func TestHandleAuthorizationErrorActions(t *testing.T) {
	tests := []struct {
		name       string
		action     authapi.AuthorizationAction
		content    string
		wantStatus int
	}{
		{name: "bad request", action: authapi.AuthorizationActionBadRequest, content: `{"error":"invalid_request"}`, wantStatus: http.StatusBadRequest},
		{name: "location", action: authapi.AuthorizationActionLocation, content: "https://client.example.com/cb?error=invalid_scope", wantStatus: http.StatusFound},
		{name: "form", action: authapi.AuthorizationActionForm, content: "<html></html>", wantStatus: http.StatusOK},
		{name: "internal server error", action: authapi.AuthorizationActionInternalServerError, content: `{"error":"server_error"}`, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockClient(ctrl)
			api.EXPECT().
				Authorization(gomock.Any(), gomock.Any()).
				Return(&authapi.AuthorizationResponse{Action: tt.action, ResponseContent: tt.content}, nil)

			res, pending := newTestHandler(api, nil).HandleAuthorization(context.Background(), "x=y", nil)

			require.NotNil(t, res)
			assert.Nil(t, pending)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}

func TestHandleAuthorizationUnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)
	api.EXPECT().
		Authorization(gomock.Any(), gomock.Any()).
		Return(&authapi.AuthorizationResponse{Action: authapi.AuthorizationAction("SURPRISE")}, nil)

	res, _ := newTestHandler(api, nil).HandleAuthorization(context.Background(), "x=y", nil)

	require.NotNil(t, res)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Body, "/auth/authorization")
}

func TestHandleNoInteraction(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	t.Run("authenticated user completes silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)
		sink := auditmemory.New()

		api.EXPECT().
			Authorization(gomock.Any(), gomock.Any()).
			Return(&authapi.AuthorizationResponse{
				Action: authapi.AuthorizationActionNoInteraction,
				Ticket: "ticket-1",
			}, nil)
		api.EXPECT().
			AuthorizationIssue(gomock.Any(), &authapi.AuthorizationIssueRequest{
				Ticket:   "ticket-1",
				Subject:  "alice",
				AuthTime: now.Unix() - 10,
			}).
			Return(&authapi.AuthorizationIssueResponse{
				Action:          authapi.AuthorizationIssueActionLocation,
				ResponseContent: "https://client.example.com/cb?code=abc",
			}, nil)

		ctx := requestcontext.WithTime(context.Background(), now)
		provider := authenticatedUser(ctrl, now.Unix()-10)

		res, _ := newTestHandler(api, sink).HandleAuthorization(ctx, "prompt=none", provider)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "https://client.example.com/cb?code=abc", res.Header.Get("Location"))

		events := sink.Events()
		require.Len(t, events, 1)
		assert.Equal(t, audit.ActionAuthorizationIssued, events[0].Action)
		assert.Equal(t, "alice", events[0].Subject)
	})

	t.Run("stale authentication fails with max age reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)
		sink := auditmemory.New()

		api.EXPECT().
			Authorization(gomock.Any(), gomock.Any()).
			Return(&authapi.AuthorizationResponse{
				Action: authapi.AuthorizationActionNoInteraction,
				Ticket: "ticket-1",
				MaxAge: 3600,
			}, nil)
		api.EXPECT().
			AuthorizationFail(gomock.Any(), &authapi.AuthorizationFailRequest{
				Ticket: "ticket-1",
				Reason: authapi.FailReasonExceedsMaxAge,
			}).
			Return(&authapi.AuthorizationFailResponse{
				Action:          authapi.AuthorizationFailActionLocation,
				ResponseContent: "https://client.example.com/cb?error=login_required",
			}, nil)

		ctx := requestcontext.WithTime(context.Background(), now)
		provider := authenticatedUser(ctrl, now.Unix()-3601)

		res, _ := newTestHandler(api, sink).HandleAuthorization(ctx, "prompt=none", provider)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusFound, res.StatusCode)

		events := sink.Events()
		require.Len(t, events, 1)
		assert.Equal(t, audit.ActionAuthorizationDenied, events[0].Action)
		assert.Equal(t, string(authapi.FailReasonExceedsMaxAge), events[0].Reason)
	})
}

func TestHandleDecision(t *testing.T) {
	t.Run("denied consent fails with DENIED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		provider := spimocks.NewMockDecisionProvider(ctrl)
		provider.EXPECT().ClientAuthorized(gomock.Any()).Return(false)

		api.EXPECT().
			AuthorizationFail(gomock.Any(), &authapi.AuthorizationFailRequest{
				Ticket: "ticket-1",
				Reason: authapi.FailReasonDenied,
			}).
			Return(&authapi.AuthorizationFailResponse{
				Action:          authapi.AuthorizationFailActionLocation,
				ResponseContent: "https://client.example.com/cb?error=access_denied",
			}, nil)

		res := newTestHandler(api, nil).HandleDecision(context.Background(), "ticket-1", nil, nil, provider)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusFound, res.StatusCode)
	})

	t.Run("approval without a subject fails with NOT_AUTHENTICATED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		provider := spimocks.NewMockDecisionProvider(ctrl)
		provider.EXPECT().ClientAuthorized(gomock.Any()).Return(true)
		provider.EXPECT().UserSubject(gomock.Any()).Return("")

		api.EXPECT().
			AuthorizationFail(gomock.Any(), &authapi.AuthorizationFailRequest{
				Ticket: "ticket-1",
				Reason: authapi.FailReasonNotAuthenticated,
			}).
			Return(&authapi.AuthorizationFailResponse{
				Action:          authapi.AuthorizationFailActionBadRequest,
				ResponseContent: `{"error":"login_required"}`,
			}, nil)

		res := newTestHandler(api, nil).HandleDecision(context.Background(), "ticket-1", nil, nil, provider)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("approval issues with collected claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockClient(ctrl)

		provider := spimocks.NewMockDecisionProvider(ctrl)
		provider.EXPECT().ClientAuthorized(gomock.Any()).Return(true)
		provider.EXPECT().UserSubject(gomock.Any()).Return("alice").AnyTimes()
		provider.EXPECT().UserAuthenticatedAt(gomock.Any()).Return(int64(1_700_000_000))
		provider.EXPECT().ACR(gomock.Any()).Return("")
		provider.EXPECT().Sub(gomock.Any()).Return("")
		provider.EXPECT().Properties(gomock.Any()).Return(nil)
		provider.EXPECT().Scopes(gomock.Any()).Return(nil)
		provider.EXPECT().
			UserClaimValue(gomock.Any(), "alice", "email", "").
			Return("alice@example.com")

		api.EXPECT().
			AuthorizationIssue(gomock.Any(), &authapi.AuthorizationIssueRequest{
				Ticket:   "ticket-1",
				Subject:  "alice",
				AuthTime: 1_700_000_000,
				Claims:   `{"email":"alice@example.com"}`,
			}).
			Return(&authapi.AuthorizationIssueResponse{
				Action:          authapi.AuthorizationIssueActionLocation,
				ResponseContent: "https://client.example.com/cb?code=abc",
			}, nil)

		res := newTestHandler(api, nil).HandleDecision(context.Background(), "ticket-1", []string{"email"}, nil, provider)

		require.NotNil(t, res)
		assert.Equal(t, http.StatusFound, res.StatusCode)
	})
}
