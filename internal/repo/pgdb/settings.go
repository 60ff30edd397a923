package pgdb

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	errorsUtils "github.com/logtrail/logtrail/pkg/errors"
	"github.com/logtrail/logtrail/pkg/postgres"
)

// SettingsRepo stores singleton configuration documents keyed by a type
// discriminator, payload as jsonb.
type SettingsRepo struct {
	*postgres.Postgres
}

func NewSettingsRepo(pg *postgres.Postgres) *SettingsRepo {
	return &SettingsRepo{pg}
}

func (r *SettingsRepo) Get(ctx context.Context, settingsType string) ([]byte, bool, error) {
	sql, args, _ := r.Builder.
		Select("payload").
		From("settings").
		Where(sq.Eq{"type": settingsType}).
		ToSql()

	var payload []byte
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errorsUtils.WrapPathErr(err)
	}
	return payload, true, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, settingsType string, payload []byte) error {
	sql, args, _ := r.Builder.
		Insert("settings").
		Columns("type", "payload").
		Values(settingsType, payload).
		Suffix("ON CONFLICT (type) DO UPDATE SET payload = EXCLUDED.payload").
		ToSql()

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
