package services

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"travelplanner/internal/catalog"
	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestSummaryServiceGenerate(t *testing.T) {
	cost := 1250.0
	loader := func(_ context.Context, id int64) (tripSummaryData, error) {
		return tripSummaryData{
			Trip:         models.Trip{ID: id, Name: "Île-de-France weekend", StartDate: strPtr("2024-05-01"), EndDate: strPtr("2024-05-03")},
			Destinations: []models.Destination{{Name: "Paris", Country: strPtr("France")}},
			Itinerary:    []models.ItineraryItem{{Title: "Louvre", Date: strPtr("2024-05-02"), StartTime: strPtr("10:00"), Cost: &cost}},
			Notes:        []models.Note{{Title: "Packing", Content: strPtr("umbrella")}},
		}, nil
	}

	pdf, filename, err := SummaryService{Loader: loader}.GenerateTripSummary(context.Background(), 7)
	if err != nil {
		t.Fatalf("GenerateTripSummary returned error: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatalf("expected PDF bytes")
	}
	if !strings.HasPrefix(filename, "TRIP_7_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSummaryServiceMissingTrip(t *testing.T) {
	loader := func(context.Context, int64) (tripSummaryData, error) {
		return tripSummaryData{}, domain.NotFoundError{Resource: "trip"}
	}
	_, _, err := SummaryService{Loader: loader}.GenerateTripSummary(context.Background(), 1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchServiceRequiresQuery(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	svc := SearchService{Catalog: c}
	if _, err := svc.Search(context.Background(), SearchQuery{}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	spaced, err := svc.Search(context.Background(), SearchQuery{Q: " "})
	if err != nil {
		t.Fatal(err)
	}
	if spaced.Total != 2 {
		t.Fatalf("whitespace query should match spaced names, got %+v", spaced)
	}
	res, err := svc.Search(context.Background(), SearchQuery{Q: "york"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Results[0].Name != "New York" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestTripServiceDeleteCascades(t *testing.T) {
	conn, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM trips WHERE id=?")).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	for _, table := range []string{"itinerary_items", "destinations", "accommodations", "transports", "notes"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table + " WHERE trip_id=?")).WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trips WHERE id=?")).WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := (TripService{DB: conn}).Delete(context.Background(), 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNoteServiceCreateUnknownTripRollsBack(t *testing.T) {
	conn, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM trips WHERE id=?")).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := NoteService{DB: conn}.Create(context.Background(), []byte(`{"trip_id":99,"title":"x"}`))
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRejectsBadPaging(t *testing.T) {
	size := 0
	_, err := TripService{}.List(context.Background(), domain.ListQuery{Limit: &size})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
