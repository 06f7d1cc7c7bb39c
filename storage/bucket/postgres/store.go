// Package pgbucket keeps the published stadium records in the published_records table.
package pgbucket

import (
	"context"

	"github.com/volatiletech/sqlboiler/v4/queries"
	"github.com/volatiletech/strmangle"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
	"github.com/jyvarssudha/Smartamenitiescampusapp/storage/database"
)

const (
	upsertQuery = `INSERT INTO published_records (bucket, key, payload, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (bucket, key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
	deleteQuery = `DELETE FROM published_records WHERE bucket = $1 AND key = $2`
	listQuery   = `SELECT payload FROM published_records WHERE bucket = $1 ORDER BY position`
)

type row struct {
	Payload []byte `boil:"payload"`
}

type Store struct {
	exec core.DBExecutor
}

var _ stadium.BucketStore = (*Store)(nil)

func NewStore(exec core.DBExecutor) *Store {
	return &Store{exec: exec}
}

func (s *Store) Upsert(ctx context.Context, bucket, key string, payload []byte) error {
	_, err := queries.Raw(upsertQuery, bucket, key, string(payload)).ExecContext(ctx, s.exec)
	return database.MapError(err, "upserting published record")
}

func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	res, err := queries.Raw(deleteQuery, bucket, key).ExecContext(ctx, s.exec)
	if err != nil {
		return database.MapError(err, "deleting published record")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return database.MapError(err, "deleting published record")
	}
	if n == 0 {
		return core.NewNotFoundError(bucket, key)
	}
	return nil
}

func (s *Store) List(ctx context.Context, bucket string) ([][]byte, error) {
	var rows []row
	if err := queries.Raw(listQuery, bucket).Bind(ctx, s.exec, &rows); err != nil {
		return nil, database.MapError(err, "listing published records")
	}
	out := make([][]byte, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Payload)
	}
	return out, nil
}

// Reset drops every record of the buckets in names.
func (s *Store) Reset(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(names))
	for _, n := range names {
		args = append(args, n)
	}
	q := "DELETE FROM published_records WHERE bucket IN (" + strmangle.Placeholders(true, len(names), 1, 1) + ")"
	_, err := queries.Raw(q, args...).ExecContext(ctx, s.exec)
	return database.MapError(err, "resetting published records")
}
