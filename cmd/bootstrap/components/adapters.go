package components

import (
	"club-booking/internal/infra/statement"
	"club-booking/internal/pkg/config"
	"club-booking/internal/pkg/shortlink"
	"club-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapters",
	fx.Provide(
		fx.Annotate(
			NewLinkCodec,
			fx.As(new(shared.TokenCodec)),
		),
		fx.Annotate(
			NewStatementParser,
			fx.As(new(shared.StatementParser)),
		),
	),
)

func NewLinkCodec(cfg config.Config) (*shortlink.Codec, error) {
	return shortlink.NewCodec(cfg.Booking.LinkSalt, cfg.Booking.LinkMinLength, cfg.Booking.LinkAlphabet)
}

func NewStatementParser(cfg config.Config) *statement.Parser {
	return statement.NewParser(cfg.Payment.MaxStatementBytes)
}
