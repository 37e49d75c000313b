package lambda

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// Header returns the first header value matching name case-insensitively
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Query returns the query parameter value, or "" when absent
func (r *Request) Query(name string) string {
	return r.QueryParams[name]
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(req *Request) (*Response, error)

// Content types used by function responses
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Text builds a plain text response
func Text(statusCode int, body string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": ContentTypeText},
		Body:       []byte(body),
	}
}

// JSON builds a compact JSON response
func JSON(statusCode int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return jsonResponse(statusCode, body), nil
}

// IndentedJSON builds a JSON response indented by two spaces
func IndentedJSON(statusCode int, v any) (*Response, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return jsonResponse(statusCode, body), nil
}

func jsonResponse(statusCode int, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
		Body:       body,
	}
}

// InternalError is the fallback returned when a handler itself fails
func InternalError() *Response {
	return jsonResponse(http.StatusInternalServerError, []byte(`{"error": "Internal server error"}`))
}

// NotFound is returned for unrouted requests
func NotFound() *Response {
	return jsonResponse(http.StatusNotFound, []byte(`{"error": "Not found"}`))
}
