package lambda

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy event into a Request
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding base64 body: %w", err)
		}
		body = decoded
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
		RequestID:   event.RequestContext.RequestID,
	}, nil
}

// ToAPIGateway converts a Response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// FromHTTP converts a net/http request into a Request, reading the whole body
func FromHTTP(req *http.Request, requestID string) (*Request, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
	}

	headers := make(map[string]string, len(req.Header))
	for k := range req.Header {
		headers[k] = req.Header.Get(k)
	}

	query := make(map[string]string)
	for k, v := range req.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return &Request{
		Method:      req.Method,
		Path:        req.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		RequestID:   requestID,
	}, nil
}

// Send writes the response to a net/http response writer
func (r *Response) Send(w http.ResponseWriter) error {
	for k, v := range r.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(r.StatusCode)
	_, err := w.Write(r.Body)
	return err
}
