package http

import (
	"net/url"

	"go.uber.org/zap"

	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called on transport failures, error statuses and undecodable bodies
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls to the application log. Query parameters listed as
// sensitive are masked before the URL is logged.
type ZapLogger struct {
	sensitiveParams []string
}

var _ HTTPLogger = (*ZapLogger)(nil)

func NewZapLogger(sensitiveParams ...string) *ZapLogger {
	return &ZapLogger{sensitiveParams: sensitiveParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	safeURL := l.MaskURL(rawURL)
	log.Debug(msg.GetMessage("http.request", method, safeURL),
		zap.String("method", method),
		zap.String("url", safeURL),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	safeURL := l.MaskURL(rawURL)
	log.Info(msg.GetMessage("http.response", method, safeURL, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", safeURL),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	safeURL := l.MaskURL(rawURL)
	log.Warn(msg.GetMessage("http.response-fail", method, safeURL, httpStatus, latency, err.Error()),
		zap.String("method", method),
		zap.String("url", safeURL),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody),
		zap.Error(err),
	)
}

// MaskURL replaces the values of sensitive query parameters with "***".
func (l *ZapLogger) MaskURL(rawURL string) string {
	return MaskURL(rawURL, l.sensitiveParams...)
}

// MaskURL replaces the values of the given query parameters in rawURL with "***".
func MaskURL(rawURL string, sensitiveParams ...string) string {
	if len(sensitiveParams) == 0 {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	masked := false
	for _, name := range sensitiveParams {
		if query.Has(name) {
			query.Set(name, "***")
			masked = true
		}
	}
	if !masked {
		return rawURL
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
