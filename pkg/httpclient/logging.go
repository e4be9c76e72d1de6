package httpclient

import (
	"net/http"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// LogRequests returns a middleware that logs each outbound request with its
// method, URL, status, and duration. The logger comes from the request
// context via zctx, so request-scoped fields propagate.
func LogRequests() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			lg := zctx.From(req.Context())

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				lg.Warn("Outbound request failed", append(fields, zap.Error(err))...)
				return resp, err
			}

			lg.Debug("Outbound request", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}

// UserAgent returns a middleware that sets the User-Agent header on every
// outbound request that does not already have one.
func UserAgent(ua string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("User-Agent") == "" {
				req = req.Clone(req.Context())
				req.Header.Set("User-Agent", ua)
			}
			return next.RoundTrip(req)
		})
	}
}
