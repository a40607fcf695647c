package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/usecase/weather"
	pkghttp "weather-relay/pkg/http"
	"weather-relay/pkg/log"
)

type upstreamStub struct {
	mutex   sync.Mutex
	queries []string
	status  int
	body    string
}

func (u *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mutex.Lock()
	u.queries = append(u.queries, r.URL.RawQuery)
	status, body := u.status, u.body
	u.mutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (u *upstreamStub) lastQuery() string {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return u.queries[len(u.queries)-1]
}

func (u *upstreamStub) calls() int {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return len(u.queries)
}

func newRelay(t *testing.T, stub *upstreamStub) *echo.Echo {
	t.Helper()
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	gateway := api.NewWeatherGateway(server.URL+"/v1", "test-key", pkghttp.ClientOptions{ReadTimeout: 2 * time.Second})
	e := echo.New()
	NewWeatherController(e.Group(""), weather.NewWeatherUseCase(gateway)).InitWeatherRoutes()
	return e
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	log.Replace(zap.New(core))
	t.Cleanup(func() { log.Replace(zap.NewNop()) })
	return logs
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCurrentConditionsLondon(t *testing.T) {
	stub := &upstreamStub{
		status: http.StatusOK,
		body:   `{"location":{"name":"London","country":"United Kingdom","region":"City of London"},"current":{"temp_c":15,"temp_f":59,"condition":{"text":"Cloudy","code":1006},"wind_mph":8,"humidity":70,"uv":1}}`,
	}
	e := newRelay(t, stub)

	rec := get(e, "/weather/London")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := `{"location":"London","country":"United Kingdom","temp_c":15,"temp_f":59,"condition":"Cloudy","wind_mph":8,"humidity":70}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		t.Errorf("unexpected content type %q", rec.Header().Get(echo.HeaderContentType))
	}
	if stub.lastQuery() != "key=test-key&q=London" {
		t.Errorf("unexpected upstream query %q", stub.lastQuery())
	}
}

func TestCurrentConditionsNotFound(t *testing.T) {
	logs := observeLogs(t)
	stub := &upstreamStub{
		status: http.StatusBadRequest,
		body:   `{"error":{"code":1006,"message":"No matching location found."}}`,
	}
	e := newRelay(t, stub)

	rec := get(e, "/weather/Nonexistentville")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch weather data"}` {
		t.Errorf("unexpected body %s", got)
	}

	entries := logs.FilterMessage("Current conditions lookup for 'Nonexistentville' failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one failure log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["kind"] != "STATUS" || fields["upstream_message"] != "No matching location found." {
		t.Errorf("unexpected log fields %v", fields)
	}
	if fields["upstream_status"] != int64(http.StatusBadRequest) {
		t.Errorf("unexpected upstream status %v", fields["upstream_status"])
	}
}

func TestCurrentConditionsUniformFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"code":2006,"message":"API key is invalid."}}`},
		{name: "malformed body", status: http.StatusOK, body: `{"location":{"name":"London"`},
		{name: "missing current", status: http.StatusOK, body: `{"location":{"name":"London"}}`},
		{name: "empty object", status: http.StatusOK, body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRelay(t, &upstreamStub{status: tt.status, body: tt.body})

			rec := get(e, "/weather/London")

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch weather data"}` {
				t.Errorf("unexpected body %s", got)
			}
		})
	}
}

func TestCurrentConditionsUnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	gateway := api.NewWeatherGateway(baseURL, "k", pkghttp.ClientOptions{ConnectionTimeout: time.Second, ReadTimeout: time.Second})
	e := echo.New()
	NewWeatherController(e.Group(""), weather.NewWeatherUseCase(gateway)).InitWeatherRoutes()

	rec := get(e, "/weather/London")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch weather data"}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestCurrentConditionsDecodesCity(t *testing.T) {
	stub := &upstreamStub{status: http.StatusOK, body: `{"location":{"name":"New York"},"current":{"condition":{}}}`}
	e := newRelay(t, stub)

	for _, target := range []string{"/weather/New%20York", "/weather/New%20York%2FUSA"} {
		rec := get(e, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
	}

	if stub.lastQuery() != "key=test-key&q=New+York%2FUSA" {
		t.Errorf("unexpected upstream query %q", stub.lastQuery())
	}
}

func TestForecastParis(t *testing.T) {
	stub := &upstreamStub{
		status: http.StatusOK,
		body: `{"location":{"name":"Paris","country":"France"},"forecast":{"forecastday":[
			{"date":"2024-05-01","date_epoch":1714521600,"day":{"maxtemp_c":21.4,"mintemp_c":11.2,"condition":{"text":"Sunny"}}},
			{"date":"2024-05-02","day":{"maxtemp_c":18,"mintemp_c":9.9,"condition":{"text":"Light rain"}}},
			{"date":"2024-05-03","day":{"maxtemp_c":17.5,"mintemp_c":8,"condition":{"text":"Overcast"}}}
		]}}`,
	}
	e := newRelay(t, stub)

	rec := get(e, "/forecast/Paris/3")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := `{"location":"Paris","forecast":[` +
		`{"date":"2024-05-01","max_temp_c":21.4,"min_temp_c":11.2,"condition":"Sunny"},` +
		`{"date":"2024-05-02","max_temp_c":18,"min_temp_c":9.9,"condition":"Light rain"},` +
		`{"date":"2024-05-03","max_temp_c":17.5,"min_temp_c":8,"condition":"Overcast"}]}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if stub.lastQuery() != "days=3&key=test-key&q=Paris" {
		t.Errorf("unexpected upstream query %q", stub.lastQuery())
	}
}

func TestForecastForwardsDaysVerbatim(t *testing.T) {
	stub := &upstreamStub{status: http.StatusOK, body: `{"location":{"name":"Paris"},"forecast":{"forecastday":[]}}`}
	e := newRelay(t, stub)

	for _, days := range []string{"0", "abc", "15"} {
		rec := get(e, "/forecast/Paris/"+days)

		if rec.Code != http.StatusOK {
			t.Fatalf("days %q: expected 200, got %d", days, rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != `{"location":"Paris","forecast":[]}` {
			t.Errorf("days %q: unexpected body %s", days, got)
		}
		if stub.lastQuery() != "days="+days+"&key=test-key&q=Paris" {
			t.Errorf("days %q: unexpected upstream query %q", days, stub.lastQuery())
		}
	}
}

func TestForecastFailure(t *testing.T) {
	logs := observeLogs(t)
	e := newRelay(t, &upstreamStub{status: http.StatusBadRequest, body: `{"error":{"code":1006,"message":"No matching location found."}}`})

	rec := get(e, "/forecast/Nowhere/3")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch forecast data"}` {
		t.Errorf("unexpected body %s", got)
	}
	if logs.FilterMessage("Forecast lookup for 'Nowhere' (3 days) failed").Len() != 1 {
		t.Error("expected forecast failure to be logged")
	}
}

func TestForecastMissingDay(t *testing.T) {
	e := newRelay(t, &upstreamStub{status: http.StatusOK, body: `{"location":{"name":"Paris"},"forecast":{"forecastday":[{"date":"2024-05-01"}]}}`})

	rec := get(e, "/forecast/Paris/1")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch forecast data"}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestRepeatedRequestsOneUpstreamCallEach(t *testing.T) {
	stub := &upstreamStub{status: http.StatusOK, body: `{"location":{"name":"London","country":"United Kingdom"},"current":{"temp_c":15,"condition":{"text":"Cloudy"}}}`}
	e := newRelay(t, stub)

	first := get(e, "/weather/London").Body.String()
	second := get(e, "/weather/London").Body.String()

	if first != second {
		t.Errorf("responses differ: %s vs %s", first, second)
	}
	if stub.calls() != 2 {
		t.Errorf("expected two upstream calls, got %d", stub.calls())
	}
}

func TestCurrentConditionsKeepsAPIKeyOutOfLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log.Replace(zap.New(core))
	t.Cleanup(func() { log.Replace(zap.NewNop()) })

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	gateway := api.NewWeatherGateway(baseURL+"/v1", "SECRETKEY123", pkghttp.ClientOptions{ConnectionTimeout: time.Second, ReadTimeout: time.Second})
	e := echo.New()
	NewWeatherController(e.Group(""), weather.NewWeatherUseCase(gateway)).InitWeatherRoutes()

	rec := get(e, "/weather/London")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if logs.Len() == 0 {
		t.Fatal("expected the failure to be logged")
	}
	for _, entry := range logs.All() {
		if strings.Contains(entry.Message, "SECRETKEY123") {
			t.Errorf("API key in log message %q", entry.Message)
		}
		for name, value := range entry.ContextMap() {
			if strings.Contains(fmt.Sprint(value), "SECRETKEY123") {
				t.Errorf("API key in log field %s: %v", name, value)
			}
		}
	}
	if strings.Contains(rec.Body.String(), "SECRETKEY123") {
		t.Errorf("API key in response body %s", rec.Body.String())
	}
}

func TestCurrentConditionsFollowsProviderRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/current.json", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/v2/current.json?"+r.URL.RawQuery, http.StatusFound)
	})
	mux.HandleFunc("/v2/current.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"name":"London","country":"United Kingdom"},"current":{"temp_c":15,"condition":{"text":"Cloudy"}}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	gateway := api.NewWeatherGateway(server.URL+"/v1", "test-key", pkghttp.ClientOptions{ReadTimeout: 2 * time.Second})
	e := echo.New()
	NewWeatherController(e.Group(""), weather.NewWeatherUseCase(gateway)).InitWeatherRoutes()

	rec := get(e, "/weather/London")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := `{"location":"London","country":"United Kingdom","temp_c":15,"condition":"Cloudy"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
