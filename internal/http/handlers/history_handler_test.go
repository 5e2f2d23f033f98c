package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tbourn/go-play-history/internal/domain"
)

func getHistory(t *testing.T, h *Handlers, userID, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/history/"+userID+query, nil)
	w := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(w, req)
	return w
}

func TestGetHistory_DefaultsAndMapping(t *testing.T) {
	h, _, _, his, _ := defaultHandlers()
	playedAt := time.Date(2025, 10, 6, 10, 0, 0, 0, time.UTC)
	his.items = []domain.PlayEvent{{
		EventID:          validEventID,
		UserID:           validUserID,
		ContentID:        validContentID,
		Device:           "mobile",
		PlaybackDuration: 42.5,
		PlayedAt:         playedAt,
	}}
	his.total = 7

	w := getHistory(t, h, validUserID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decodeJSON[HistoryResponse](t, w)
	if resp.UserID != validUserID || resp.Total != 7 {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
	if resp.Limit != 20 || resp.Offset != 0 {
		t.Fatalf("defaults not applied: limit=%d offset=%d", resp.Limit, resp.Offset)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	it := resp.Items[0]
	if it.ContentID != validContentID || it.Device != "mobile" || it.PlaybackDuration != 42.5 {
		t.Fatalf("item mapping wrong: %+v", it)
	}
	if !it.PlayedAt.Equal(playedAt) {
		t.Fatalf("playedAt mismatch: %v", it.PlayedAt)
	}
}

func TestGetHistory_ExplicitPagingEchoed(t *testing.T) {
	h, _, _, _, _ := defaultHandlers()

	w := getHistory(t, h, validUserID, "?limit=5&offset=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[HistoryResponse](t, w)
	if resp.Limit != 5 || resp.Offset != 10 {
		t.Fatalf("paging not echoed: %+v", resp)
	}
}

func TestGetHistory_EmptyPage_ItemsNotNull(t *testing.T) {
	h, _, _, _, _ := defaultHandlers()

	w := getHistory(t, h, validUserID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[HistoryResponse](t, w)
	if resp.Total != 0 || resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("expected empty-but-present items: %+v", resp)
	}
}

func TestGetHistory_Validation(t *testing.T) {
	h, _, _, _, _ := defaultHandlers()

	cases := []struct {
		name   string
		userID string
		query  string
		paths  []string
	}{
		{"bad user id", "not-a-uuid", "", []string{"userId"}},
		{"limit zero", validUserID, "?limit=0", []string{"limit"}},
		{"limit too large", validUserID, "?limit=101", []string{"limit"}},
		{"limit not numeric", validUserID, "?limit=abc", []string{"limit"}},
		{"negative offset", validUserID, "?offset=-1", []string{"offset"}},
		{"everything wrong", "nope", "?limit=0&offset=x", []string{"userId", "limit", "offset"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := getHistory(t, h, tc.userID, tc.query)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			resp := decodeJSON[ErrorResponse](t, w)
			if resp.Code != ErrCodeValidation {
				t.Fatalf("code = %q", resp.Code)
			}
			got := map[string]bool{}
			for _, fe := range resp.Errors {
				got[fe.Path] = true
			}
			for _, p := range tc.paths {
				if !got[p] {
					t.Errorf("missing field error for %q in %+v", p, resp.Errors)
				}
			}
			if len(resp.Errors) != len(tc.paths) {
				t.Errorf("expected %d errors, got %+v", len(tc.paths), resp.Errors)
			}
		})
	}
}

func TestGetHistory_ServiceFailure(t *testing.T) {
	h, _, _, his, _ := defaultHandlers()
	his.err = errors.New("query failed")

	w := getHistory(t, h, validUserID, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
