package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "travelplanner/internal/config"
	"travelplanner/internal/db"
	"travelplanner/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	conn, err := intconfig.Open(ctx, "sqlite://")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, conn))

	intconfig.DB = conn
	t.Cleanup(intconfig.CloseDB)

	r, err := NewRouter(intconfig.Env{})
	require.NoError(t, err)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createTrip(t *testing.T, r *gin.Engine, name string) models.Trip {
	t.Helper()
	w := do(t, r, http.MethodPost, "/trips", fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Trip](t, w)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Healthy"}`, w.Body.String())
}

func TestHealthWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	intconfig.CloseDB()
	r, err := NewRouter(intconfig.Env{})
	require.NoError(t, err)

	w := do(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Healthy"}`, w.Body.String())
}

func TestCreateThenGetReturnsSameRecord(t *testing.T) {
	r := newTestRouter(t)
	trip := createTrip(t, r, "Japan")

	w := do(t, r, http.MethodPost, "/itinerary", fmt.Sprintf(
		`{"trip_id":%d,"title":"Fushimi Inari","date":"2024-04-03","start_time":"08:00","cost":0,"location":"  "}`, trip.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.ItineraryItem](t, w)
	require.Nil(t, created.Location)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/itinerary-items/%d", created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.ItineraryItem](t, w)

	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("stored record differs (-created +got):\n%s", diff)
	}
}

func TestCreateWithUnknownTripIsNotFound(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/notes", `{"trip_id":404,"title":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]any](t, w)
	require.Equal(t, "not_found", body["code"])
}

func TestValidationErrorPayload(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/trips", `{"start_date":"tomorrow"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[map[string]any](t, w)
	require.Equal(t, "validation_error", body["code"])
	require.NotEmpty(t, body["request_id"])
	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 2)
}

func TestQueryValidationPayloadNamesParameters(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/trips?page=0&page_size=500", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
			Msg   string `json:"msg"`
		} `json:"details"`
	}](t, w)
	require.Equal(t, "validation_error", body.Code)
	fields := map[string]string{}
	for _, d := range body.Details {
		fields[d.Field] = d.Msg
	}
	require.Equal(t, map[string]string{
		"page":      "must be greater than or equal to 1",
		"page_size": "must be less than or equal to 100",
	}, fields)
}

func TestDeletedRecordIsGone(t *testing.T) {
	r := newTestRouter(t)
	trip := createTrip(t, r, "Lisbon")
	path := fmt.Sprintf("/trips/%d", trip.ID)

	require.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, path, "").Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, path, "").Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodPatch, path, `{"name":"x"}`).Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, path, "").Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/trips/999999", "").Code)
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/trips/abc", "").Code)
}

func TestDeleteTripRemovesChildren(t *testing.T) {
	r := newTestRouter(t)
	trip := createTrip(t, r, "Alps")
	w := do(t, r, http.MethodPost, "/accommodations", fmt.Sprintf(`{"trip_id":%d,"name":"Hut"}`, trip.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	stay := decode[models.Accommodation](t, w)

	require.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, fmt.Sprintf("/trips/%d", trip.ID), "").Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, fmt.Sprintf("/accommodations/%d", stay.ID), "").Code)
}

func TestDeleteDestinationDetachesItinerary(t *testing.T) {
	r := newTestRouter(t)
	trip := createTrip(t, r, "Italy")
	w := do(t, r, http.MethodPost, "/destinations", fmt.Sprintf(`{"trip_id":%d,"name":"Rome"}`, trip.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dest := decode[models.Destination](t, w)

	w = do(t, r, http.MethodPost, "/itinerary", fmt.Sprintf(`{"trip_id":%d,"destination_id":%d,"title":"Colosseum"}`, trip.ID, dest.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode[models.ItineraryItem](t, w)

	require.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, fmt.Sprintf("/destinations/%d", dest.ID), "").Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/itinerary/%d", item.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode[models.ItineraryItem](t, w).DestinationID)
}

func TestPaginationCoversEveryRecordOnce(t *testing.T) {
	r := newTestRouter(t)
	want := map[int64]bool{}
	for i := 0; i < 7; i++ {
		want[createTrip(t, r, fmt.Sprintf("trip %d", i)).ID] = true
	}

	seen := map[int64]bool{}
	var lastID int64
	for page := 1; ; page++ {
		w := do(t, r, http.MethodGet, fmt.Sprintf("/trips?page=%d&page_size=3", page), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		p := decode[struct {
			Items []models.Trip `json:"items"`
			Meta  struct {
				Total    int `json:"total"`
				PageSize int `json:"page_size"`
			} `json:"meta"`
		}](t, w)
		require.Equal(t, 7, p.Meta.Total)
		require.LessOrEqual(t, len(p.Items), 3)
		if len(p.Items) == 0 {
			break
		}
		for _, tr := range p.Items {
			require.False(t, seen[tr.ID], "duplicate id %d", tr.ID)
			if lastID != 0 {
				require.Less(t, tr.ID, lastID, "expected newest first")
			}
			lastID = tr.ID
			seen[tr.ID] = true
		}
	}
	require.Equal(t, want, seen)

	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/trips?page_size=101", "").Code)
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/trips?page=0&limit=0", "").Code)
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/trips?page=0", "").Code)
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/trips?page_size=0", "").Code)

	w := do(t, r, http.MethodGet, "/trips?offset=5&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[struct {
		Items []models.Trip `json:"items"`
	}](t, w).Items, 2)
}

func TestListFilterByTrip(t *testing.T) {
	r := newTestRouter(t)
	a := createTrip(t, r, "A")
	b := createTrip(t, r, "B")
	for _, id := range []int64{a.ID, a.ID, b.ID} {
		w := do(t, r, http.MethodPost, "/transport", fmt.Sprintf(`{"trip_id":%d,"type":"train"}`, id))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w := do(t, r, http.MethodGet, fmt.Sprintf("/transports?trip_id=%d", a.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[struct {
		Items []models.Transport `json:"items"`
	}](t, w)
	require.Len(t, p.Items, 2)
}

func TestUpdateIsIdempotent(t *testing.T) {
	r := newTestRouter(t)
	trip := createTrip(t, r, "Peru")
	path := fmt.Sprintf("/trips/%d", trip.ID)
	payload := `{"description":"Inca trail","start_date":"2024-09-01"}`

	w := do(t, r, http.MethodPut, path, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[models.Trip](t, w)
	require.Equal(t, "Peru", first.Name)

	w = do(t, r, http.MethodPatch, path, payload)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[models.Trip](t, w)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second update changed the record:\n%s", diff)
	}

	w = do(t, r, http.MethodPatch, path, `{"description":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode[models.Trip](t, w).Description)

	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPatch, path, `{"name":null}`).Code)
}

func TestSearch(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/destinations/search?q=KYO", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[struct {
		Results []struct {
			Name string  `json:"name"`
			IATA *string `json:"iata"`
		} `json:"results"`
		Total int `json:"total"`
	}](t, w)
	require.Equal(t, 2, res.Total)
	for _, e := range res.Results {
		hit := strings.Contains(strings.ToLower(e.Name), "kyo")
		if e.IATA != nil {
			hit = hit || strings.Contains(strings.ToLower(*e.IATA), "kyo")
		}
		require.True(t, hit, "unexpected result %s", e.Name)
	}

	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/destinations/search?q=", "").Code)
	require.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/destinations/search", "").Code)
	w = do(t, r, http.MethodGet, "/destinations/search?q=%20", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "San Francisco")
}

func TestSummaryPDF(t *testing.T) {
	r := newTestRouter(t)
	trip := createTrip(t, r, "Iceland")

	w := do(t, r, http.MethodGet, fmt.Sprintf("/trips/%d/summary.pdf", trip.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode[map[string]any](t, w)
	require.Contains(t, doc["paths"], "/transport/{id}")

	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/routes", "").Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/db-check", "").Code)

	w = do(t, r, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"route not found","path":"/nope","method":"GET"}`, w.Body.String())
}
