package db

import (
	"context"

	"github.com/souqhq/souq/internal/account/entity"
)

const queryGetUserByEmail = `
SELECT id, email, full_name, password, created_at, updated_at
FROM users
WHERE email = $1
`

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

const queryGetUserByID = `
SELECT id, email, full_name, password, created_at, updated_at
FROM users
WHERE id = $1
`

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByID, id).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

const queryGetSellerByEmail = `
SELECT id, email, full_name, password, phone, country, created_at, updated_at
FROM sellers
WHERE email = $1
`

func (s *DB) GetSellerByEmail(ctx context.Context, email string) (_ *entity.Seller, err error) {
	ctx, span := s.startSpan(ctx, "GetSellerByEmail")
	defer func() { s.endSpan(span, err) }()

	var seller entity.Seller
	err = s.conn.QueryRow(ctx, queryGetSellerByEmail, email).Scan(
		&seller.ID,
		&seller.Email,
		&seller.FullName,
		&seller.Password,
		&seller.Phone,
		&seller.Country,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &seller, nil
}

const queryGetSellerByID = `
SELECT id, email, full_name, password, phone, country, created_at, updated_at
FROM sellers
WHERE id = $1
`

func (s *DB) GetSellerByID(ctx context.Context, id int64) (_ *entity.Seller, err error) {
	ctx, span := s.startSpan(ctx, "GetSellerByID")
	defer func() { s.endSpan(span, err) }()

	var seller entity.Seller
	err = s.conn.QueryRow(ctx, queryGetSellerByID, id).Scan(
		&seller.ID,
		&seller.Email,
		&seller.FullName,
		&seller.Password,
		&seller.Phone,
		&seller.Country,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &seller, nil
}
