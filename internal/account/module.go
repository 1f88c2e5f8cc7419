package account

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/souqhq/souq/internal/account/inbound"
	"github.com/souqhq/souq/internal/account/outbound/db"
	"github.com/souqhq/souq/internal/account/outbound/email"
	"github.com/souqhq/souq/internal/account/outbound/mq"
	"github.com/souqhq/souq/internal/account/usecase"
	"github.com/souqhq/souq/internal/pkg/goroutine"
	"github.com/souqhq/souq/internal/pkg/hash"
	"github.com/souqhq/souq/internal/pkg/instrument"
	"github.com/souqhq/souq/internal/pkg/jwt"
	"github.com/souqhq/souq/internal/pkg/mail"
	"github.com/souqhq/souq/internal/pkg/messaging"
	"github.com/souqhq/souq/internal/pkg/otpguard"
	"github.com/souqhq/souq/internal/pkg/router"
	"github.com/souqhq/souq/internal/pkg/uid"
	"github.com/souqhq/souq/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
	RefreshJWT jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAccount := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	notifier := email.New(dep.Mail, dep.Instrument)

	guard := otpguard.New(
		otpguard.NewRedisStore(dep.CacheConn),
		notifier,
		otpguard.NewCryptoRand(),
	)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAccount,
		RepoMessaging: repoMsg,
		Guard:         guard,
		Validator:     dep.Validator,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		JWT:           dep.JWT,
		RefreshJWT:    dep.RefreshJWT,
		Goroutine:     dep.Goroutine,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
