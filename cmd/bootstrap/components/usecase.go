package components

import (
	"eatery-api/internal/infra/email"
	"eatery-api/internal/pkg/clock"
	"eatery-api/internal/usecase"
	"eatery-api/internal/usecase/commands"
	"eatery-api/internal/usecase/notify"
	"eatery-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *email.Sender {
		return email.NewSender()
	},
	func(s *email.Sender) notify.DeliverySender { return s },
	fx.Annotate(
		notify.NewService,
		fx.As(new(commands.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewMailConfigCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewNotificationQueries,
		queries.NewMailConfigQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
