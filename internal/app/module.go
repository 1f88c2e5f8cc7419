package app

import (
	"log/slog"
	"os"

	"github.com/souqhq/souq/internal/account"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.account.enabled") {
		if err := account.New(account.Dependency{
			DBConn:     a.dbConn,
			CacheConn:  a.cacheConn,
			Router:     a.router,
			Goroutine:  a.goroutine,
			Messaging:  a.messaging,
			Mail:       a.mail,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			Validator:  a.validator,
			JWT:        a.jwt,
			RefreshJWT: a.refreshJWT,
		}); err != nil {
			slog.Error("failed to init module account", "error", err)
			os.Exit(1)
		}
	}
}
