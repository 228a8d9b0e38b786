package request

import (
	"encoding/base64"
	"time"
	"unicode/utf8"

	"club-booking/internal/pkg/errs"
)

type VerifyPaymentsRequest struct {
	// CSV is the bank statement export, base64 encoded.
	CSV       string  `json:"csv" binding:"required,base64"`
	StartDate *string `json:"start_date" binding:"omitempty,germandate"`
}

var ErrStatementEncoding = errs.New("statement is not valid UTF-8 text")

func (r *VerifyPaymentsRequest) ToDomain() (string, *time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(r.CSV)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to decode statement")
	}
	if !utf8.Valid(raw) {
		return "", nil, ErrStatementEncoding
	}

	var since *time.Time
	if r.StartDate != nil {
		t, err := time.Parse(GermanDateLayout, *r.StartDate)
		if err != nil {
			return "", nil, errs.Wrapf(err, "invalid start date %q", *r.StartDate)
		}
		since = &t
	}
	return string(raw), since, nil
}
