package db

import (
	"context"

	"github.com/souqhq/souq/internal/account/entity"
)

const queryCreateUser = `
INSERT INTO users (id, email, full_name, password)
VALUES ($1, $2, $3, $4)
`

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser, in.ID, in.Email, in.FullName, in.Password)
	err = s.mapError(err)
	return err
}

const queryCreateSeller = `
INSERT INTO sellers (id, email, full_name, password, phone, country)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (s *DB) CreateSeller(ctx context.Context, in entity.NewSeller) (err error) {
	ctx, span := s.startSpan(ctx, "CreateSeller")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateSeller, in.ID, in.Email, in.FullName, in.Password, in.Phone, in.Country)
	err = s.mapError(err)
	return err
}
