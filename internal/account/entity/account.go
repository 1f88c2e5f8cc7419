package entity

import "time"

type User struct {
	ID        int64
	Email     string
	FullName  string
	Password  string // hashed
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Seller struct {
	ID        int64
	Email     string
	FullName  string
	Password  string // hashed
	Phone     string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewUser struct {
	ID       int64
	Email    string
	FullName string
	Password string // hashed
}

type NewSeller struct {
	ID       int64
	Email    string
	FullName string
	Password string // hashed
	Phone    string
	Country  string
}
