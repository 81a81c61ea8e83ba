package domain

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestResolvePageDefaults(t *testing.T) {
	p, err := ListQuery{}.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if p.Page != 1 || p.PageSize != DefaultPageSize || p.Offset != 0 || p.Limit != DefaultPageSize {
		t.Fatalf("unexpected defaults %+v", p)
	}
}

func TestResolvePageWindow(t *testing.T) {
	p, err := ListQuery{Page: intPtr(3), PageSize: intPtr(10)}.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if p.Offset != 20 || p.Limit != 10 {
		t.Fatalf("unexpected window %+v", p)
	}
}

func TestResolveOffsetLimitWins(t *testing.T) {
	p, err := ListQuery{Page: intPtr(9), PageSize: intPtr(50), Offset: intPtr(30), Limit: intPtr(15)}.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if p.Offset != 30 || p.Limit != 15 || p.Page != 3 || p.PageSize != 15 {
		t.Fatalf("unexpected window %+v", p)
	}
}

func TestResolveRejectsOutOfRange(t *testing.T) {
	bad := []ListQuery{
		{Page: intPtr(-1)},
		{Page: intPtr(0)},
		{PageSize: intPtr(0)},
		{PageSize: intPtr(MaxPageSize + 1)},
		{Offset: intPtr(-1)},
		{Limit: intPtr(0)},
		{Limit: intPtr(MaxPageSize + 1)},
	}
	for _, q := range bad {
		if _, err := q.Resolve(); !IsValidation(err) {
			t.Fatalf("%+v: expected validation error, got %v", q, err)
		}
	}
}

func TestTimestampScan(t *testing.T) {
	want := time.Date(2024, 5, 1, 8, 30, 0, 123000000, time.UTC)
	inputs := []any{
		want,
		"2024-05-01 08:30:00.123+00:00",
		[]byte("2024-05-01T08:30:00.123Z"),
		"2024-05-01 08:30:00.123",
	}
	for _, in := range inputs {
		var ts Timestamp
		if err := ts.Scan(in); err != nil {
			t.Fatalf("scan %v: %v", in, err)
		}
		if !ts.Equal(want) {
			t.Fatalf("scan %v: got %v", in, ts.Time)
		}
	}
	var ts Timestamp
	if err := ts.Scan(42); err == nil {
		t.Fatalf("expected error for int input")
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsNotFound(NotFoundError{Resource: "trip"}) || (NotFoundError{Resource: "trip"}).Error() != "trip not found" {
		t.Fatalf("not found helper broken")
	}
	many := ValidationErrors{{Field: "name", Msg: "field required"}, {Field: "end_date", Msg: "bad"}}
	if !IsValidation(many) || many.Error() != "name: field required (and 1 more)" {
		t.Fatalf("validation helper broken: %v", many)
	}
	if Internal("x", nil) != nil {
		t.Fatalf("nil must pass through")
	}
	if err := Internal("save failed", NotFoundError{}); !IsNotFound(err) {
		t.Fatalf("typed client errors must pass through")
	}
	if err := Internal("save failed", ValidationError{}); IsInternal(err) {
		t.Fatalf("validation must not become internal")
	}
}
