// Package web holds the HTTP-facing value types of the decision layer:
// normalized credentials extracted from requests, and the response
// abstraction every handler produces. Responses always carry cache
// prevention headers; endpoint-specific headers are layered on top and can
// never displace that policy.
package web

import (
	"net/http"
)

// Content types used by the endpoint families. The revocation endpoint keeps
// the historical application/javascript type for compatibility.
const (
	ContentTypeJSON            = "application/json;charset=UTF-8"
	ContentTypeJavaScript      = "application/javascript;charset=UTF-8"
	ContentTypeJWT             = "application/jwt"
	ContentTypeHTML            = "text/html;charset=UTF-8"
	ContentTypeEntityStatement = "application/entity-statement+jwt"
)

// Response is the sole output surface of the decision layer: an HTTP status,
// a content type, a body, and extra headers. Cache prevention headers are not
// stored here; Write applies them unconditionally.
type Response struct {
	StatusCode  int
	ContentType string
	Body        string
	Header      http.Header
}

// WithHeader returns r with an extra header set. A nil-safe no-op when the
// value is empty.
func (r *Response) WithHeader(key, value string) *Response {
	if value == "" {
		return r
	}
	if r.Header == nil {
		r.Header = http.Header{}
	}
	r.Header.Set(key, value)
	return r
}

// Write renders the response. Cache prevention headers are applied last so
// no handler-supplied header can override them.
func (r *Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	for key, values := range r.Header {
		for _, v := range values {
			h.Add(key, v)
		}
	}
	if r.ContentType != "" {
		h.Set("Content-Type", r.ContentType)
	}
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")

	w.WriteHeader(r.StatusCode)
	if r.Body == "" {
		return nil
	}
	_, err := w.Write([]byte(r.Body))
	return err
}

// OKJSON builds a 200 response with a JSON body.
func OKJSON(body string) *Response {
	return &Response{StatusCode: http.StatusOK, ContentType: ContentTypeJSON, Body: body}
}

// OKJavaScript builds a 200 response with the legacy JavaScript content type.
func OKJavaScript(body string) *Response {
	return &Response{StatusCode: http.StatusOK, ContentType: ContentTypeJavaScript, Body: body}
}

// OKJWT builds a 200 response carrying a serialized JWT.
func OKJWT(body string) *Response {
	return &Response{StatusCode: http.StatusOK, ContentType: ContentTypeJWT, Body: body}
}

// OKHTML builds a 200 response with an HTML body (the FORM action).
func OKHTML(body string) *Response {
	return &Response{StatusCode: http.StatusOK, ContentType: ContentTypeHTML, Body: body}
}

// EntityStatement builds a 200 response carrying a signed federation entity
// statement.
func EntityStatement(body string) *Response {
	return &Response{StatusCode: http.StatusOK, ContentType: ContentTypeEntityStatement, Body: body}
}

// Created builds a 201 response with a JSON body.
func Created(body string) *Response {
	return &Response{StatusCode: http.StatusCreated, ContentType: ContentTypeJSON, Body: body}
}

// NoContent builds a 204 response.
func NoContent() *Response {
	return &Response{StatusCode: http.StatusNoContent}
}

// Location builds a 302 response redirecting to the given URL.
func Location(location string) *Response {
	r := &Response{StatusCode: http.StatusFound}
	return r.WithHeader("Location", location)
}

// BadRequest builds a 400 response with a JSON body.
func BadRequest(body string) *Response {
	return &Response{StatusCode: http.StatusBadRequest, ContentType: ContentTypeJSON, Body: body}
}

// Unauthorized builds a 401 response with a WWW-Authenticate challenge and an
// optional JSON body.
func Unauthorized(challenge, body string) *Response {
	return WWWAuthenticate(http.StatusUnauthorized, challenge, body)
}

// Forbidden builds a 403 response with a JSON body.
func Forbidden(body string) *Response {
	return &Response{StatusCode: http.StatusForbidden, ContentType: ContentTypeJSON, Body: body}
}

// NotFound builds a 404 response with a JSON body.
func NotFound(body string) *Response {
	return &Response{StatusCode: http.StatusNotFound, ContentType: ContentTypeJSON, Body: body}
}

// TooLarge builds a 413 response with a JSON body.
func TooLarge(body string) *Response {
	return &Response{StatusCode: http.StatusRequestEntityTooLarge, ContentType: ContentTypeJSON, Body: body}
}

// InternalServerError builds a 500 response with a JSON body.
func InternalServerError(body string) *Response {
	return &Response{StatusCode: http.StatusInternalServerError, ContentType: ContentTypeJSON, Body: body}
}

// WWWAuthenticate builds a response whose WWW-Authenticate header carries the
// given challenge. The body, when present, is JSON.
func WWWAuthenticate(status int, challenge, body string) *Response {
	r := &Response{StatusCode: status}
	if body != "" {
		r.ContentType = ContentTypeJSON
		r.Body = body
	}
	return r.WithHeader("WWW-Authenticate", challenge)
}
