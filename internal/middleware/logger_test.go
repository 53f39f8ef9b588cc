package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ticketpulse/internal/logger"
)

func TestToString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "abc", want: "abc"},
		{name: "non-string", in: 123, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toString(tc.in); got != tc.want {
				t.Fatalf("toString(%v)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// lastLogLine decodes the final JSON line the request logger emitted.
func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var line map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return line
}

func TestRequestLogger_EmitsStructuredEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	restore := logger.SetOutput(&buf)
	defer restore()

	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/api/v1/events", func(c *gin.Context) { c.String(http.StatusOK, "[]") })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("X-Request-ID", "rid-e2e-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	line := lastLogLine(t, &buf)
	if line["message"] != "http_request" {
		t.Fatalf("message = %v, want http_request", line["message"])
	}
	if line["method"] != "GET" || line["path"] != "/api/v1/events" {
		t.Fatalf("unexpected method/path: %v", line)
	}
	if line["status"] != float64(http.StatusOK) {
		t.Fatalf("status = %v, want 200", line["status"])
	}
	if line["request_id"] != "rid-e2e-1" {
		t.Fatalf("request_id = %v, want rid-e2e-1", line["request_id"])
	}
	if _, ok := line["latency_ms"]; !ok {
		t.Fatalf("missing latency_ms: %v", line)
	}
	if line["service"] != "ticketpulse" {
		t.Fatalf("service = %v, want ticketpulse", line["service"])
	}
}

func TestRequestLogger_RecordsErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	restore := logger.SetOutput(&buf)
	defer restore()

	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/boom", func(c *gin.Context) { c.String(http.StatusInternalServerError, "boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	line := lastLogLine(t, &buf)
	if line["status"] != float64(http.StatusInternalServerError) {
		t.Fatalf("status = %v, want 500", line["status"])
	}
}
