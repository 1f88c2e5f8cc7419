package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/souqhq/souq/internal/pkg/clock"
	"github.com/souqhq/souq/internal/pkg/config"
	"github.com/souqhq/souq/internal/pkg/goroutine"
	"github.com/souqhq/souq/internal/pkg/hash"
	"github.com/souqhq/souq/internal/pkg/instrument"
	"github.com/souqhq/souq/internal/pkg/jwt"
	"github.com/souqhq/souq/internal/pkg/mail"
	"github.com/souqhq/souq/internal/pkg/messaging"
	"github.com/souqhq/souq/internal/pkg/router"
	"github.com/souqhq/souq/internal/pkg/uid"
	"github.com/souqhq/souq/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine  *goroutine.Manager
	validator  validator.Validator
	clock      clock.Clocker
	bcrypt     hash.Hash
	uid        uid.NumberID
	uuid       uid.StringID
	jwt        jwt.JWT
	refreshJWT jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail
	messaging messaging.Publisher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
