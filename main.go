package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"inventory/pkg/app"
	"inventory/pkg/config"
	"inventory/pkg/domain/service"
	"inventory/pkg/infrastructure/audit"
	"inventory/pkg/infrastructure/mysql"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.WithError(err).Fatal("Failed to read configuration")
	}

	cliApp := &cli.App{
		Name:  "inventory",
		Usage: "console inventory manager with a git-backed audit trail",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db-host", Usage: "MySQL host", Value: cfg.DBHost, Destination: &cfg.DBHost},
			&cli.IntFlag{Name: "db-port", Usage: "MySQL port", Value: cfg.DBPort, Destination: &cfg.DBPort},
			&cli.StringFlag{Name: "db-user", Usage: "MySQL user", Value: cfg.DBUser, Destination: &cfg.DBUser},
			&cli.StringFlag{Name: "db-password", Usage: "MySQL password", Value: cfg.DBPassword, Destination: &cfg.DBPassword},
			&cli.StringFlag{Name: "db-name", Usage: "database name", Value: cfg.DBName, Destination: &cfg.DBName},
			&cli.StringFlag{Name: "audit-repo", Usage: "audit repository path", Value: cfg.AuditRepoPath, Destination: &cfg.AuditRepoPath},
			&cli.BoolFlag{Name: "log-json", Usage: "log in JSON format", Value: cfg.LogJSON, Destination: &cfg.LogJSON},
		},
		Action: func(*cli.Context) error {
			return run(cfg)
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Inventory manager exited with error")
	}
}

func run(cfg *config.Config) error {
	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	db, err := mysql.Connect(mysql.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.WithFields(log.Fields{"host": cfg.DBHost, "database": cfg.DBName}).Info("Connected to MySQL")

	journal, err := audit.Open(cfg.AuditRepoPath, audit.Author{
		Name:  cfg.AuditAuthorName,
		Email: cfg.AuditAuthorEmail,
	})
	if err != nil {
		return err
	}
	log.WithField("path", cfg.AuditRepoPath).Info("Audit repository ready")

	productRepo := mysql.NewProductRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	purchaseRepo := mysql.NewPurchaseRepository(db)

	shell := app.NewApp(
		service.NewProductService(productRepo),
		service.NewCustomerService(customerRepo),
		service.NewPurchaseService(purchaseRepo, productRepo, customerRepo),
		journal,
		os.Stdin,
		os.Stdout,
	)
	shell.Run()
	return nil
}
