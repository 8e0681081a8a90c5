package components

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"stash-backend/internal/infra/userstore"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewUserStore,
			fx.As(new(userstore.Store)),
		),
	),
)

func NewUserStore(pool *pgxpool.Pool) (*userstore.PostgresStore, error) {
	return userstore.NewPostgresStore(context.Background(), pool)
}
