package components

import (
	"eatery-api/internal/infra/readstore"
	repo_impl "eatery-api/internal/infra/repository"
	"eatery-api/internal/usecase/commands"
	"eatery-api/internal/usecase/notify"
	"eatery-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(notify.LogRepository)),
		),
		// The mail configuration store is shared by the write side, the
		// notifier and the admin read view.
		fx.Annotate(
			repo_impl.NewMailConfigRepository,
			fx.As(new(commands.MailConfigRepository), new(notify.CredentialsSource), new(queries.MailConfigSource)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)
