package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReportData is everything rendered into a fare-estimate PDF.
type ReportData struct {
	ID             string
	FromAirport    string
	ToAirport      string
	DepartureDate  string
	PredictedPrice float64
	CreatedAt      time.Time
}

// GenerateReportBytes renders a fare-estimate PDF and returns raw
// bytes (no filesystem needed).
func GenerateReportBytes(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Farecast", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Flight Fare Estimate", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This is a model-generated estimate, NOT a fare quote. Actual prices vary by airline, cabin and availability.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Details ──────────────────────────────────────────────
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 8, label, "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(115, 8, value, "B", 1, "L", false, 0, "")
	}

	row("Estimate ID", data.ID)
	row("Route", fmt.Sprintf("%s  ->  %s", data.FromAirport, data.ToAirport))
	row("Departure Date", data.DepartureDate)
	row("Generated", data.CreatedAt.Format("2006-01-02 15:04 MST"))

	pdf.Ln(8)
	pdf.SetFillColor(13, 24, 37)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(170, 12,
		fmt.Sprintf("  Estimated Price: $%.2f %s", data.PredictedPrice, Currency),
		"", 1, "L", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
