package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// serveEvent runs one API Gateway v2 proxy event through an http.Handler
// and captures the result as a proxy response.
func serveEvent(ctx context.Context, handler http.Handler, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := toHTTPRequest(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	rec := &responseRecorder{statusCode: http.StatusOK, header: make(http.Header)}
	handler.ServeHTTP(rec, req)

	return rec.result(), nil
}

func toHTTPRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	path := event.RawPath
	if path == "" {
		path = event.RequestContext.HTTP.Path
	}

	u := url.URL{
		Path:     path,
		RawQuery: event.RawQueryString,
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("decode request body: %w", err)
		}
		body = string(decoded)
	}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for name, value := range event.Headers {
		req.Header.Set(name, value)
	}

	// Gateway v2 strips cookies out of the headers into their own field.
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}

	req.RemoteAddr = event.RequestContext.HTTP.SourceIP

	return req, nil
}

// responseRecorder captures a handler's response for conversion into a
// proxy response.
type responseRecorder struct {
	statusCode  int
	header      http.Header
	body        bytes.Buffer
	wroteHeader bool
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.statusCode = code
	r.wroteHeader = true
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.body.Write(b)
}

func (r *responseRecorder) result() events.APIGatewayV2HTTPResponse {
	headers := make(map[string]string, len(r.header))
	var cookies []string

	for name, values := range r.header {
		// Set-Cookie travels in the response cookies field, one per cookie.
		if http.CanonicalHeaderKey(name) == "Set-Cookie" {
			cookies = append(cookies, values...)
			continue
		}
		headers[name] = strings.Join(values, ", ")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: r.statusCode,
		Headers:    headers,
		Cookies:    cookies,
		Body:       r.body.String(),
	}
}
