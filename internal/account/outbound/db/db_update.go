package db

import (
	"context"

	"github.com/souqhq/souq/internal/pkg/goerror"
)

const queryUpdateUserPassword = `
UPDATE users
SET password = $2, updated_at = now()
WHERE id = $1
`

func (s *DB) UpdateUserPassword(ctx context.Context, id int64, hashed string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPassword")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateUserPassword, id, hashed)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
