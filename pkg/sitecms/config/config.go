package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chemosit/sitecms/pkg/sitecms"
	"github.com/chemosit/sitecms/pkg/sitecms/repo/memory"
	repopg "github.com/chemosit/sitecms/pkg/sitecms/repo/postgres"
	fsstorage "github.com/chemosit/sitecms/pkg/sitecms/storage/fs"
	memorystorage "github.com/chemosit/sitecms/pkg/sitecms/storage/memory"
	s3storage "github.com/chemosit/sitecms/pkg/sitecms/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		Environment:  "development",
		DatabaseType: "memory",
		StorageBackend: StorageBackendConfig{
			Type:   "memory",
			Config: map[string]interface{}{},
		},
		EnableEventLogging: true,
	}
}

// ServerConfig represents server configuration for the site CMS service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"

	// Storage configuration
	StorageBackend StorageBackendConfig

	// EnableEventLogging routes lifecycle events through the structured
	// logger instead of the no-op sink
	EnableEventLogging bool
}

// StorageBackendConfig represents configuration for a storage backend
type StorageBackendConfig struct {
	Type   string // "memory", "fs", "s3"
	Config map[string]interface{}
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	switch c.StorageBackend.Type {
	case "memory", "fs", "s3":
	default:
		return fmt.Errorf("unsupported storage backend type: %s", c.StorageBackend.Type)
	}

	return nil
}

// BuildService creates a Service instance from the server configuration.
// The blob store backing the service is returned too so callers can wire
// direct uploads against the same instance.
func (c *ServerConfig) BuildService(logger *slog.Logger) (sitecms.Service, sitecms.BlobStore, error) {
	var options []sitecms.Option

	repo, err := c.buildRepository()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build repository: %w", err)
	}
	options = append(options, sitecms.WithRepository(repo))

	store, err := c.buildStorageBackend()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build storage backend: %w", err)
	}
	options = append(options, sitecms.WithBlobStore(store))

	if c.EnableEventLogging {
		options = append(options, sitecms.WithEventSink(sitecms.NewSlogEventSink(logger)))
	}
	if logger != nil {
		options = append(options, sitecms.WithLogger(logger))
	}

	svc, err := sitecms.New(options...)
	if err != nil {
		return nil, nil, err
	}
	return svc, store, nil
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository() (sitecms.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return memory.New(), nil
	case "postgres":
		if c.DatabaseURL == "" {
			return nil, errors.New("database_url is required for postgres")
		}
		cfg, err := pgxpool.ParseConfig(c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}

// PingPostgres verifies connectivity to Postgres before the server starts
// serving requests.
func PingPostgres(databaseURL string) error {
	if databaseURL == "" {
		return errors.New("database_url is required")
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool: %w", err)
	}
	defer pool.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// buildStorageBackend creates a BlobStore based on the backend configuration
func (c *ServerConfig) buildStorageBackend() (sitecms.BlobStore, error) {
	backend := c.StorageBackend
	switch backend.Type {
	case "memory":
		return memorystorage.New(), nil

	case "fs":
		fsConfig := fsstorage.Config{
			BaseDir:   getString(backend.Config, "base_dir", "./data/storage"),
			URLPrefix: getString(backend.Config, "url_prefix", ""),
		}
		return fsstorage.New(fsConfig)

	case "s3":
		s3Config := s3storage.Config{
			Region:                 getString(backend.Config, "region", "us-east-1"),
			Bucket:                 getString(backend.Config, "bucket", ""),
			AccessKeyID:            getString(backend.Config, "access_key_id", ""),
			SecretAccessKey:        getString(backend.Config, "secret_access_key", ""),
			Endpoint:               getString(backend.Config, "endpoint", ""),
			UsePathStyle:           getBool(backend.Config, "use_path_style", false),
			PresignDuration:        getInt(backend.Config, "presign_duration", 3600),
			CreateBucketIfNotExist: getBool(backend.Config, "create_bucket_if_not_exist", false),
		}
		return s3storage.New(s3Config)

	default:
		return nil, fmt.Errorf("unsupported storage backend type: %s", backend.Type)
	}
}

func getString(config map[string]interface{}, key string, defaultValue string) string {
	if value, exists := config[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBool(config map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := config[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
		if str, ok := value.(string); ok {
			if b, err := strconv.ParseBool(str); err == nil {
				return b
			}
		}
	}
	return defaultValue
}

func getInt(config map[string]interface{}, key string, defaultValue int) int {
	if value, exists := config[key]; exists {
		if i, ok := value.(int); ok {
			return i
		}
		if str, ok := value.(string); ok {
			if i, err := strconv.Atoi(str); err == nil {
				return i
			}
		}
		if f, ok := value.(float64); ok {
			return int(f)
		}
	}
	return defaultValue
}
