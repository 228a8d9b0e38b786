// Package statement reads bank statement exports into payment records.
//
// Two layouts are understood. The rich layout is the Volksbank "Umsatzanzeige"
// export: a metadata block, a fixed title row, the transactions, an all-empty
// terminator row and the balance rows. The classic layout is the plain
// Atruvia CSV export with a signed amount column and no terminator.
package statement

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"club-booking/internal/domain/payment"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/pkg/money"
)

const (
	richTitleRow   = "Buchungstag;Valuta;Textschlüssel;Primanota;Zahlungsempfänger;ZahlungsempfängerKto;ZahlungsempfängerIBAN;ZahlungsempfängerBLZ;ZahlungsempfängerBIC;Vorgang/Verwendungszweck;Kundenreferenz;Währung;Umsatz;Soll/Haben"
	richTerminator = ";;;;;;;;;;;;;"

	dateLayout = "02.01.2006"
	credit     = "H"
	bom        = "\ufeff"
)

const (
	colDate      = "Buchungstag"
	colRichPayee = "Zahlungsempfänger"
	colRichIBAN  = "ZahlungsempfängerIBAN"
	colRichText  = "Vorgang/Verwendungszweck"
	colRichSum   = "Umsatz"
	colRichSign  = "Soll/Haben"

	colPayee   = "Name Zahlungsbeteiligter"
	colIBAN    = "IBAN Zahlungsbeteiligter"
	colPurpose = "Verwendungszweck"
	colAmount  = "Betrag"
)

var classicColumns = []string{colDate, colPayee, colIBAN, colPurpose, colAmount}

const (
	ProbeNoTitleRow   = "no title row found for rich or classic statement layout"
	ProbeNoTerminator = "found no valid end sequence in rich statement layout"
	ProbeTooLarge     = "statement exceeds size limit"
)

type layout struct {
	name    string
	columns []string
	signed  bool
}

var (
	richLayout = layout{
		name:    "rich",
		columns: []string{colDate, colRichPayee, colRichIBAN, colRichText, colRichSum, colRichSign},
	}
	classicLayout = layout{
		name:    "classic",
		columns: classicColumns,
		signed:  true,
	}
)

type Parser struct {
	maxBytes int
}

// NewParser returns a parser rejecting input larger than maxBytes.
// A non-positive maxBytes disables the limit.
func NewParser(maxBytes int) *Parser {
	return &Parser{maxBytes: maxBytes}
}

// Parse extracts the records of a statement in file order. Records booked
// before the calendar day of since are dropped. The first malformed row
// aborts the parse.
func (p *Parser) Parse(ctx context.Context, text string, since *time.Time) ([]payment.Record, error) {
	if p.maxBytes > 0 && len(text) > p.maxBytes {
		return nil, errs.NewFormatError(ProbeTooLarge, fmt.Sprintf("%d bytes > %d bytes", len(text), p.maxBytes), nil)
	}

	if start := strings.Index(text, richTitleRow); start >= 0 {
		body := text[start:]
		end := strings.Index(body, richTerminator)
		if end < 0 {
			return nil, errs.NewFormatError(ProbeNoTerminator, body, nil)
		}
		return p.read(ctx, richLayout, body[:end], lineOf(text, start), since)
	}

	if start, ok := classicTitleRow(text); ok {
		return p.read(ctx, classicLayout, text[start:], lineOf(text, start), since)
	}

	return nil, errs.NewFormatError(ProbeNoTitleRow, text, nil)
}

func (p *Parser) read(ctx context.Context, l layout, body string, firstLine int, since *time.Time) ([]payment.Record, error) {
	r := csv.NewReader(strings.NewReader(body))
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, errs.NewFormatError(fmt.Sprintf("unreadable title row in %s statement layout", l.name), body, err)
	}
	index, err := columnIndex(header, l.columns)
	if err != nil {
		return nil, errs.NewFormatError(fmt.Sprintf("incomplete title row in %s statement layout", l.name), strings.Join(header, ";"), err)
	}

	var cutoff time.Time
	if since != nil {
		cutoff = time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)
	}

	records := make([]payment.Record, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, errs.Wrap(err, "statement parsing interrupted")
		}

		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line := firstLine
		if row != nil {
			fieldLine, _ := r.FieldPos(0)
			line = firstLine + fieldLine - 1
		}
		if err != nil {
			return nil, errs.NewFormatError(fmt.Sprintf("malformed row in line %d", line), strings.Join(row, ";"), err)
		}
		if blank(row) {
			continue
		}
		if len(row) < len(header) {
			return nil, errs.NewFormatError(
				fmt.Sprintf("line %d has %d columns, expected %d", line, len(row), len(header)),
				strings.Join(row, ";"), nil)
		}

		rec, err := l.record(row, index)
		if err != nil {
			return nil, errs.NewFormatError(fmt.Sprintf("invalid row in line %d", line), strings.Join(row, ";"), err)
		}
		if since != nil && rec.Date.Before(cutoff) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l layout) record(row []string, index map[string]int) (payment.Record, error) {
	dateText := strings.TrimSpace(row[index[colDate]])
	date, err := time.ParseInLocation(dateLayout, dateText, time.UTC)
	if err != nil {
		return payment.Record{}, errs.Wrapf(err, "invalid date %q", dateText)
	}

	if l.signed {
		amount, err := money.Parse(row[index[colAmount]])
		if err != nil {
			return payment.Record{}, err
		}
		return payment.NewRecord(date,
			strings.TrimSpace(row[index[colPayee]]),
			strings.TrimSpace(row[index[colIBAN]]),
			strings.TrimSpace(row[index[colPurpose]]),
			amount), nil
	}

	amount, err := money.Parse(row[index[colRichSum]])
	if err != nil {
		return payment.Record{}, err
	}
	if strings.TrimSpace(row[index[colRichSign]]) != credit {
		amount = amount.Neg()
	}
	return payment.NewRecord(date,
		strings.TrimSpace(row[index[colRichPayee]]),
		strings.TrimSpace(row[index[colRichIBAN]]),
		strings.TrimSpace(row[index[colRichText]]),
		amount), nil
}

func columnIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, bom))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, errs.Newf("missing column %q", col)
		}
	}
	return index, nil
}

// classicTitleRow returns the byte offset of the first line naming every
// mandatory classic column.
func classicTitleRow(text string) (int, bool) {
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r\n"), ";")
		present := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			present[strings.Trim(strings.TrimSpace(strings.TrimPrefix(f, bom)), `"`)] = struct{}{}
		}
		found := true
		for _, col := range classicColumns {
			if _, ok := present[col]; !ok {
				found = false
				break
			}
		}
		if found {
			return offset, true
		}
		offset += len(line)
	}
	return 0, false
}

func lineOf(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
