package app

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guttosm/ticketpulse/config"
)

func TestInitializeApp_DBFailure(t *testing.T) {
	old := postgresOpener
	postgresOpener = func(config.Config) (*sql.DB, error) {
		return nil, errors.New("connect refused")
	}
	t.Cleanup(func() { postgresOpener = old })

	router, cleanup, err := InitializeApp()
	if err == nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected InitializeApp to fail when postgres is unreachable")
	}
	if router != nil || cleanup != nil {
		t.Fatalf("failed init must not return partial components")
	}
}

func TestInitializeApp_WiresRoutesAndProbes(t *testing.T) {
	// Ping monitoring must be on, otherwise the readiness probe's db.Ping is
	// invisible to the mock and the expectation below would assert nothing.
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectPing()

	old := postgresOpener
	postgresOpener = func(config.Config) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() {
		postgresOpener = old
		_ = db.Close()
	})

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	if router == nil || cleanup == nil {
		t.Fatalf("expected router and cleanup")
	}

	probes := []struct {
		path string
		want int
	}{
		{path: "/healthz", want: http.StatusOK},
		{path: "/readyz", want: http.StatusOK},
	}
	for _, p := range probes {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p.path, nil))
		if w.Code != p.want {
			t.Fatalf("%s status=%d, want %d", p.path, w.Code, p.want)
		}
	}

	// An API route must be mounted; with no rows mocked the repo errors and
	// the handler maps it to 500, which still proves the wiring.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("/api/v1/events status=%d, want 500", w.Code)
	}

	cleanup()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
