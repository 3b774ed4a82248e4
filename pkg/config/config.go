package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "inventory"

// Config holds everything the tool needs to reach its backing stores. Every
// field can be set through INVENTORY_* environment variables and overridden
// by command line flags.
type Config struct {
	DBHost     string `envconfig:"db_host" default:"localhost"`
	DBPort     int    `envconfig:"db_port" default:"3306"`
	DBUser     string `envconfig:"db_user" default:"root"`
	DBPassword string `envconfig:"db_password" default:""`
	DBName     string `envconfig:"db_name" default:"inventory_management"`

	AuditRepoPath    string `envconfig:"audit_repo_path" default:"."`
	AuditAuthorName  string `envconfig:"audit_author_name" default:"Inventory Manager"`
	AuditAuthorEmail string `envconfig:"audit_author_email" default:"inventory@localhost"`

	LogJSON bool `envconfig:"log_json" default:"false"`
}

func Parse() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment configuration")
	}
	return c, nil
}
