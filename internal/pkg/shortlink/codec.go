// Package shortlink encodes integer tuples into short, reversible,
// non-cryptographic tokens used in single-click booking links.
package shortlink

import (
	"club-booking/internal/pkg/errs"

	"github.com/speps/go-hashids/v2"
)

type Codec struct {
	hd *hashids.HashID
}

func NewCodec(salt string, minLength int, alphabet string) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength
	if alphabet != "" {
		data.Alphabet = alphabet
	}

	hd, err := hashids.NewWithData(data)
	if err != nil {
		return nil, errs.Wrap(err, "failed to set up link codec")
	}
	return &Codec{hd: hd}, nil
}

func (c *Codec) Encode(ids ...int64) (string, error) {
	if len(ids) == 0 {
		return "", errs.New("nothing to encode")
	}
	token, err := c.hd.EncodeInt64(ids)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode link token")
	}
	return token, nil
}

// Decode rejects tokens that do not re-encode to themselves.
func (c *Codec) Decode(token string) ([]int64, error) {
	ids, err := c.hd.DecodeInt64WithError(token)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode link token"), errs.ErrInvalidPreBookingToken)
	}
	return ids, nil
}
