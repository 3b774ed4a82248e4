package mysql

import (
	"embed"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Connect dials the server, creates the database if it does not exist yet,
// reconnects with the database selected and applies the embedded migrations.
// Safe to run on every startup.
func Connect(cfg Config) (*sqlx.DB, error) {
	bootstrap, err := sqlx.Connect("mysql", dsn(cfg, ""))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mysql server")
	}
	_, err = bootstrap.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.Database))
	closeErr := bootstrap.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create database %s", cfg.Database)
	}
	if closeErr != nil {
		return nil, errors.Wrap(closeErr, "failed to close bootstrap connection")
	}

	db, err := sqlx.Connect("mysql", dsn(cfg, cfg.Database))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to database %s", cfg.Database)
	}

	if err := applyMigrations(db, cfg.Database); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func dsn(cfg Config, database string) string {
	c := mysql.NewConfig()
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.DBName = database
	c.ParseTime = true
	c.MultiStatements = true
	return c.FormatDSN()
}

func applyMigrations(db *sqlx.DB, database string) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to load embedded migrations")
	}
	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{DatabaseName: database})
	if err != nil {
		return errors.Wrap(err, "failed to prepare migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", source, database, driver)
	if err != nil {
		return errors.Wrap(err, "failed to prepare migrations")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}
	return nil
}
