package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/tbourn/go-play-history/internal/repo"
)

func getMostWatched(t *testing.T, h *Handlers, from, to string) *httptest.ResponseRecorder {
	t.Helper()
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/most-watched?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(w, req)
	return w
}

func TestGetMostWatched_Success(t *testing.T) {
	h, _, _, _, agg := defaultHandlers()
	agg.rows = []repo.MostWatchedRow{
		{ContentID: "c1", TotalPlays: 3, TotalDuration: 60},
		{ContentID: "c2", TotalPlays: 1, TotalDuration: 5},
	}

	w := getMostWatched(t, h, "2025-01-01T00:00:00Z", "2025-01-02T00:00:00Z")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decodeJSON[MostWatchedResponse](t, w)
	if resp.From != "2025-01-01T00:00:00Z" || resp.To != "2025-01-02T00:00:00Z" {
		t.Fatalf("window not echoed: %+v", resp)
	}
	if len(resp.Items) != 2 || resp.Items[0].ContentID != "c1" || resp.Items[0].TotalPlays != 3 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}

	// Parsed instants reach the service.
	wantFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !agg.from.Equal(wantFrom) {
		t.Fatalf("service got from=%v", agg.from)
	}
}

func TestGetMostWatched_EmptyWindow_ItemsNotNull(t *testing.T) {
	h, _, _, _, _ := defaultHandlers()

	w := getMostWatched(t, h, "2025-01-01T00:00:00Z", "2025-01-02T00:00:00Z")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[MostWatchedResponse](t, w)
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("expected empty-but-present items: %+v", resp)
	}
}

func TestGetMostWatched_Validation(t *testing.T) {
	h, _, _, _, _ := defaultHandlers()

	cases := []struct {
		name     string
		from, to string
		path     string
		message  string
	}{
		{"missing from", "", "2025-01-02T00:00:00Z", "from", msgBadFromDate},
		{"missing to", "2025-01-01T00:00:00Z", "", "to", msgBadToDate},
		{"garbage from", "not-a-date", "2025-01-02T00:00:00Z", "from", msgBadFromDate},
		{"from equals to", "2025-01-01T00:00:00Z", "2025-01-01T00:00:00Z", "from", msgFromNotearlier},
		{"from after to", "2025-01-02T00:00:00Z", "2025-01-01T00:00:00Z", "from", msgFromNotearlier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := getMostWatched(t, h, tc.from, tc.to)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			resp := decodeJSON[ErrorResponse](t, w)
			if resp.Code != ErrCodeValidation {
				t.Fatalf("code = %q", resp.Code)
			}
			if len(resp.Errors) != 1 || resp.Errors[0].Path != tc.path || resp.Errors[0].Message != tc.message {
				t.Fatalf("unexpected errors: %+v", resp.Errors)
			}
		})
	}
}

func TestGetMostWatched_BothBoundsBad_BothReported(t *testing.T) {
	h, _, _, _, _ := defaultHandlers()

	w := getMostWatched(t, h, "x", "y")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[ErrorResponse](t, w)
	if len(resp.Errors) != 2 {
		t.Fatalf("expected both bounds reported: %+v", resp.Errors)
	}
}

func TestGetMostWatched_ServiceFailure(t *testing.T) {
	h, _, _, _, agg := defaultHandlers()
	agg.err = errors.New("aggregation failed")

	w := getMostWatched(t, h, "2025-01-01T00:00:00Z", "2025-01-02T00:00:00Z")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
