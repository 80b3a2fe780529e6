package authapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "gatekit/internal/authapi"

// tracingClient decorates a Client with a span per backend call.
type tracingClient struct {
	next   Client
	tracer trace.Tracer
}

// WithTracing wraps client so every backend call is recorded as a span named
// after the backend path.
func WithTracing(client Client) Client {
	return &tracingClient{
		next:   client,
		tracer: otel.Tracer(tracerName),
	}
}

func traced[Req, Res any](
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	call func(context.Context, Req) (Res, error),
	req Req,
) (Res, error) {
	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	res, err := call(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res, err
}

func (c *tracingClient) Authorization(ctx context.Context, req *AuthorizationRequest) (*AuthorizationResponse, error) {
	return traced(ctx, c.tracer, "auth/authorization", c.next.Authorization, req)
}

func (c *tracingClient) AuthorizationIssue(ctx context.Context, req *AuthorizationIssueRequest) (*AuthorizationIssueResponse, error) {
	return traced(ctx, c.tracer, "auth/authorization/issue", c.next.AuthorizationIssue, req)
}

func (c *tracingClient) AuthorizationFail(ctx context.Context, req *AuthorizationFailRequest) (*AuthorizationFailResponse, error) {
	return traced(ctx, c.tracer, "auth/authorization/fail", c.next.AuthorizationFail, req)
}

func (c *tracingClient) Token(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	return traced(ctx, c.tracer, "auth/token", c.next.Token, req)
}

func (c *tracingClient) TokenIssue(ctx context.Context, req *TokenIssueRequest) (*TokenIssueResponse, error) {
	return traced(ctx, c.tracer, "auth/token/issue", c.next.TokenIssue, req)
}

func (c *tracingClient) TokenFail(ctx context.Context, req *TokenFailRequest) (*TokenFailResponse, error) {
	return traced(ctx, c.tracer, "auth/token/fail", c.next.TokenFail, req)
}

func (c *tracingClient) Revocation(ctx context.Context, req *RevocationRequest) (*RevocationResponse, error) {
	return traced(ctx, c.tracer, "auth/revocation", c.next.Revocation, req)
}

func (c *tracingClient) Introspection(ctx context.Context, req *IntrospectionRequest) (*IntrospectionResponse, error) {
	return traced(ctx, c.tracer, "auth/introspection", c.next.Introspection, req)
}

func (c *tracingClient) StandardIntrospection(ctx context.Context, req *StandardIntrospectionRequest) (*StandardIntrospectionResponse, error) {
	return traced(ctx, c.tracer, "auth/introspection/standard", c.next.StandardIntrospection, req)
}

func (c *tracingClient) UserInfo(ctx context.Context, req *UserInfoRequest) (*UserInfoResponse, error) {
	return traced(ctx, c.tracer, "auth/userinfo", c.next.UserInfo, req)
}

func (c *tracingClient) UserInfoIssue(ctx context.Context, req *UserInfoIssueRequest) (*UserInfoIssueResponse, error) {
	return traced(ctx, c.tracer, "auth/userinfo/issue", c.next.UserInfoIssue, req)
}

func (c *tracingClient) PushAuthorizationRequest(ctx context.Context, req *PushedAuthReqRequest) (*PushedAuthReqResponse, error) {
	return traced(ctx, c.tracer, "pushed_auth_req", c.next.PushAuthorizationRequest, req)
}

func (c *tracingClient) ServiceConfiguration(ctx context.Context, req *ServiceConfigurationRequest) (string, error) {
	return traced(ctx, c.tracer, "service/configuration", c.next.ServiceConfiguration, req)
}

func (c *tracingClient) ServiceJWKS(ctx context.Context, pretty, includePrivate bool) (string, error) {
	ctx, span := c.tracer.Start(ctx, "service/jwks/get", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	jwks, err := c.next.ServiceJWKS(ctx, pretty, includePrivate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return jwks, err
}

func (c *tracingClient) CredentialIssuerMetadata(ctx context.Context, req *CredentialIssuerMetadataRequest) (*CredentialIssuerMetadataResponse, error) {
	return traced(ctx, c.tracer, "vci/metadata", c.next.CredentialIssuerMetadata, req)
}

func (c *tracingClient) CredentialIssuerJWKS(ctx context.Context, req *CredentialIssuerJWKSRequest) (*CredentialIssuerJWKSResponse, error) {
	return traced(ctx, c.tracer, "vci/jwks", c.next.CredentialIssuerJWKS, req)
}

func (c *tracingClient) CredentialJWTIssuerMetadata(ctx context.Context, req *CredentialJWTIssuerMetadataRequest) (*CredentialJWTIssuerMetadataResponse, error) {
	return traced(ctx, c.tracer, "vci/jwtissuer", c.next.CredentialJWTIssuerMetadata, req)
}

func (c *tracingClient) FederationConfiguration(ctx context.Context, req *FederationConfigurationRequest) (*FederationConfigurationResponse, error) {
	return traced(ctx, c.tracer, "federation/configuration", c.next.FederationConfiguration, req)
}

func (c *tracingClient) FederationRegistration(ctx context.Context, req *FederationRegistrationRequest) (*FederationRegistrationResponse, error) {
	return traced(ctx, c.tracer, "federation/registration", c.next.FederationRegistration, req)
}
