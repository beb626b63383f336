package database

import (
	"github.com/go-pg/pg/v10"
)

type Options struct {
	User     string
	Addr     string
	Password string
	Database string
}

// PostgreSQLConnection opens a go-pg connection for the lobby records.
func PostgreSQLConnection(opts Options) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     opts.User,
		Addr:     opts.Addr,
		Password: opts.Password,
		Database: opts.Database,
	})
}
