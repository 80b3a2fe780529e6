package httptransport

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	"gatekit/internal/session"
	"gatekit/pkg/requestcontext"
)

// authorizationPage is the built-in consent page. Deployments with their own
// frontend bypass it by driving the decision endpoint directly.
var authorizationPage = template.Must(template.New("authorization").Parse(`<!DOCTYPE html>
<html>
<head><title>Authorization Request</title></head>
<body>
<h1>Authorization Request</h1>
<p>A client application is requesting access{{if .Scopes}} to: {{.Scopes}}{{end}}.</p>
<form method="post" action="/auth/authorization/decision">
<input type="hidden" name="ticket" value="{{.Ticket}}">
<input type="hidden" name="claims" value="{{.Claims}}">
<input type="hidden" name="claimsLocales" value="{{.ClaimsLocales}}">
<button type="submit" name="authorized" value="true">Approve</button>
<button type="submit" name="authorized" value="false">Deny</button>
</form>
</body>
</html>
`))

type authorizationPageData struct {
	Ticket        string
	Scopes        string
	Claims        string
	ClaimsLocales string
}

// handleAuthorization serves the authorization endpoint. GET carries the
// request in the query string, POST in the body.
func (s *Server) handleAuthorization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parameters := r.URL.RawQuery
	if r.Method == http.MethodPost {
		parameters = readBody(r)
	}

	provider := session.NewProvider(s.currentSession(ctx), s.claims)
	res, pending := s.handler.HandleAuthorization(ctx, parameters, provider)
	if res != nil {
		s.write(ctx, w, res)
		return
	}

	// The request needs user interaction: render the consent page bound to
	// the pending ticket.
	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	err := authorizationPage.Execute(w, authorizationPageData{
		Ticket:        pending.Ticket,
		Scopes:        strings.Join(pending.Scopes, " "),
		Claims:        strings.Join(pending.Claims, " "),
		ClaimsLocales: strings.Join(pending.ClaimsLocales, " "),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "render authorization page failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// handleAuthorizationDecision completes the flow after the user approved or
// denied on the consent page.
func (s *Server) handleAuthorizationDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	provider := &decisionProvider{
		Provider:   session.NewProvider(s.currentSession(ctx), s.claims),
		authorized: r.PostFormValue("authorized") == "true",
	}

	res := s.handler.HandleDecision(ctx,
		r.PostFormValue("ticket"),
		splitSpace(r.PostFormValue("claims")),
		splitSpace(r.PostFormValue("claimsLocales")),
		provider,
	)
	s.write(ctx, w, res)
}

// decisionProvider layers the user's consent-page answer over the session's
// authenticated-user context.
type decisionProvider struct {
	*session.Provider
	authorized bool
}

func (p *decisionProvider) ClientAuthorized(context.Context) bool {
	return p.authorized
}

func splitSpace(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Fields(value)
}
