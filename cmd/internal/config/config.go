package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	EnvVarsPrefix = "/accountsdesk/prod/"
	awsRegion     = "us-east-2"

	DefaultPort   = 7070
	DefaultDBPath = "./database.db"
)

type Config struct {
	Port      int
	DBPath    string
	SeedDemo  bool
	MachineID int64
}

// Addr is the listen address of the API server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load exports the environment for the current GO_ENV and reads the config
// from it. Production pulls parameters from SSM, anything else reads an
// optional .env file.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsRegion))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		if err = LoadProdEnv(ctx, ssm.NewFromConfig(cfg), EnvVarsPrefix); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the config from the process environment.
func FromEnv() (*Config, error) {
	c := &Config{
		Port:   DefaultPort,
		DBPath: DefaultDBPath,
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		c.Port = port
	}

	if v := strings.TrimSpace(os.Getenv("DB_PATH")); v != "" {
		c.DBPath = v
	}

	if v := strings.TrimSpace(os.Getenv("SEED_DEMO")); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DEMO %q", v)
		}
		c.SeedDemo = seed
	}

	if v := strings.TrimSpace(os.Getenv("MACHINE_ID")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 0 || id > 1023 {
			return nil, fmt.Errorf("invalid MACHINE_ID %q, expected 0-1023", v)
		}
		c.MachineID = id
	}
	return c, nil
}

// LoadProdEnv exports every parameter under prefix as an environment
// variable named after the rest of the parameter path.
func LoadProdEnv(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) error {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err = os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
	return nil
}
