package reports

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions"
)

const maxRows = 500

// Statement is everything one PDF needs.
type Statement struct {
	SessionID   string
	Items       []transactions.Transaction
	Total       float64
	GeneratedAt time.Time
}

func BuildStatementPDF(st Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ledger Statement", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Ledger Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Session: "+maskID(st.SessionID))
	pdf.Ln(10)

	var credits, debits float64
	for _, it := range st.Items {
		if it.Amount >= 0 {
			credits += it.Amount
		} else {
			debits += it.Amount
		}
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Credits", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Debits", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, formatAmount(credits), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, formatAmount(debits), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, formatAmount(st.Total), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{22, 26, 92, 30, 20}
	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "TITLE", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colW[4], 8, "ID", "1", 1, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	if len(st.Items) == 0 {
		pdf.CellFormat(0, 8, "No transactions yet", "1", 1, "C", false, 0, "")
	}

	for i, it := range st.Items {
		if i >= maxRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "...truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}

		typ := strings.ToUpper(string(transactions.Credit))
		if it.Amount < 0 {
			typ = strings.ToUpper(string(transactions.Debit))
		}
		date := ""
		if !it.CreatedAt.IsZero() {
			date = it.CreatedAt.Format("2006-01-02")
		}

		pdf.CellFormat(colW[0], 8, typ, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, date, "1", 0, "C", false, 0, "")

		x := pdf.GetX()
		y := pdf.GetY()
		pdf.MultiCell(colW[2], 8, trimTo(it.Title, 90), "1", "L", false)
		usedH := pdf.GetY() - y
		pdf.SetXY(x+colW[2], y)

		pdf.CellFormat(colW[3], usedH, formatAmount(it.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], usedH, shortID(it.ID), "1", 1, "C", false, 0, "")
	}

	generated := st.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated "+generated.UTC().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func maskID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= 8 {
		return id
	}
	return id[:4] + "..." + id[len(id)-4:]
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatAmount renders 1234567.5 as "1,234,567.50".
func formatAmount(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + withCommas(whole) + "." + frac
}

func withCommas(digits string) string {
	var b strings.Builder
	l := len(digits)
	for i := 0; i < l; i++ {
		b.WriteByte(digits[i])
		rem := l - i - 1
		if rem > 0 && rem%3 == 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}
