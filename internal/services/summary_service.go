package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travelplanner/internal/db"
	"travelplanner/internal/domain/models"
	"travelplanner/internal/repositories"
	"travelplanner/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/phpdave11/gofpdf"
)

// SummaryService renders a printable PDF of a trip and everything attached to it.
type SummaryService struct {
	DB        *sqlx.DB
	RequestID string
	Loader    func(ctx context.Context, tripID int64) (tripSummaryData, error)
}

type tripSummaryData struct {
	Trip           models.Trip
	Destinations   []models.Destination
	Itinerary      []models.ItineraryItem
	Accommodations []models.Accommodation
	Transport      []models.Transport
	Notes          []models.Note
}

// GenerateTripSummary returns the PDF bytes and a download filename.
func (s SummaryService) GenerateTripSummary(ctx context.Context, tripID int64) ([]byte, string, error) {
	data, err := s.load(ctx, tripID)
	if err != nil {
		return nil, "", storeError(s.RequestID, tripModule, "summary", err)
	}
	pdf, name, err := buildTripSummaryPDF(data)
	if err != nil {
		return nil, "", storeError(s.RequestID, tripModule, "summary", err)
	}
	utils.LogEvent(s.RequestID, tripModule, "summary", fmt.Sprintf("id=%d bytes=%d", tripID, len(pdf)))
	return pdf, name, nil
}

func (s SummaryService) load(ctx context.Context, tripID int64) (tripSummaryData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, tripID)
	}
	var d tripSummaryData
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		if d.Trip, err = (repositories.TripRepository{DB: tx}).GetByID(ctx, tripID); err != nil {
			return err
		}
		if d.Destinations, err = (repositories.DestinationRepository{DB: tx}).ListByTrip(ctx, tripID); err != nil {
			return err
		}
		if d.Itinerary, err = (repositories.ItineraryItemRepository{DB: tx}).ListByTrip(ctx, tripID); err != nil {
			return err
		}
		if d.Accommodations, err = (repositories.AccommodationRepository{DB: tx}).ListByTrip(ctx, tripID); err != nil {
			return err
		}
		if d.Transport, err = (repositories.TransportRepository{DB: tx}).ListByTrip(ctx, tripID); err != nil {
			return err
		}
		d.Notes, err = repositories.NoteRepository{DB: tx}.ListByTrip(ctx, tripID)
		return err
	})
	return d, err
}

func buildTripSummaryPDF(d tripSummaryData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(d.Trip.Name), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(d.Trip.Name))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	if r := utils.DateRange(d.Trip.StartDate, d.Trip.EndDate); r != "" {
		pdf.Cell(0, 6, r)
		pdf.Ln(6)
	}
	if d.Trip.Description != nil {
		pdf.MultiCell(0, 6, tr(*d.Trip.Description), "", "", false)
	}
	pdf.Ln(4)

	section := func(title string, lines []string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		if len(lines) == 0 {
			pdf.Cell(0, 6, "-")
			pdf.Ln(8)
			return
		}
		for _, l := range lines {
			pdf.MultiCell(0, 6, tr(l), "", "", false)
		}
		pdf.Ln(4)
	}

	var lines []string
	for _, x := range d.Destinations {
		lines = append(lines, joinNonEmpty(" | ", x.Name, deref(x.Country), utils.DateRange(x.ArrivalDate, x.DepartureDate)))
	}
	section("Destinations", lines)

	lines = nil
	total := 0.0
	for _, x := range d.Itinerary {
		when := strings.TrimSpace(utils.FormatDateLong(deref(x.Date)) + " " + clockRange(x.StartTime, x.EndTime))
		cost := ""
		if x.Cost != nil {
			total += *x.Cost
			cost = utils.FormatMoney(*x.Cost)
		}
		lines = append(lines, joinNonEmpty(" | ", x.Title, when, deref(x.Location), cost))
	}
	if total > 0 {
		lines = append(lines, "Total cost: "+utils.FormatMoney(total))
	}
	section("Itinerary", lines)

	lines = nil
	for _, x := range d.Accommodations {
		lines = append(lines, joinNonEmpty(" | ", x.Name, deref(x.Address), utils.DateRange(x.CheckIn, x.CheckOut), ref(x.BookingRef)))
	}
	section("Accommodation", lines)

	lines = nil
	for _, x := range d.Transport {
		route := joinNonEmpty(" -> ", deref(x.DepartureLocation), deref(x.ArrivalLocation))
		lines = append(lines, joinNonEmpty(" | ", x.Type, deref(x.Provider), route, utils.DateRange(x.DepartureDate, x.ArrivalDate), ref(x.BookingRef)))
	}
	section("Transport", lines)

	lines = nil
	for _, x := range d.Notes {
		lines = append(lines, joinNonEmpty(": ", x.Title, deref(x.Content)))
	}
	section("Notes", lines)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated "+time.Now().UTC().Format("2006-01-02 15:04")+" UTC")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TRIP_%d_%s.pdf", d.Trip.ID, safeFilenamePart(d.Trip.Name))
	return buf.Bytes(), filename, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s *string) string {
	if s == nil {
		return ""
	}
	return "ref " + *s
}

func clockRange(from, to *string) string {
	return joinNonEmpty("-", deref(from), deref(to))
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
