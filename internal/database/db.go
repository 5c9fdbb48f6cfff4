package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const defaultDatabaseName = "portfolio"

// Options selects and configures the backend.
type Options struct {
	// URL picks the backend by scheme: mongodb, mongodb+srv, postgres,
	// postgresql or memory.
	URL string
	// Name overrides the database name carried by URL.
	Name string
}

// Open connects to the store described by opts.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (DocumentStore, error) {
	if opts.URL == "" {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		store, err := connectMongo(ctx, opts, databaseName(opts, u), logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "postgres", "postgresql":
		store, err := connectPostgres(ctx, opts, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "memory":
		logger.Warn("using in-memory document store; data is lost on restart")
		return NewMemoryStore(databaseName(opts, u)), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

func databaseName(opts Options, u *url.URL) string {
	if opts.Name != "" {
		return opts.Name
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	if u.Scheme == "memory" && u.Host != "" {
		return u.Host
	}
	return defaultDatabaseName
}

func connectMongo(ctx context.Context, opts Options, name string, logger *zap.Logger) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(opts.URL).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	store := NewMongoStore(client, name)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("mongo connection established", zap.String("database", name))
	return store, nil
}

func connectPostgres(ctx context.Context, opts Options, logger *zap.Logger) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}
	if opts.Name != "" {
		config.ConnConfig.Database = opts.Name
	}
	if config.ConnConfig.Database == "" {
		config.ConnConfig.Database = defaultDatabaseName
	}

	config.MaxConns = 25
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	// Missing privileges on the maintenance database are not fatal; the
	// connection below reports the real problem if the database is absent.
	if err := EnsureDatabaseExists(ctx, config.ConnConfig, logger); err != nil {
		logger.Warn("could not ensure database exists", zap.Error(err))
	}

	logger.Info("connecting to database",
		zap.String("host", config.ConnConfig.Host),
		zap.Uint16("port", config.ConnConfig.Port),
		zap.String("database", config.ConnConfig.Database),
	)

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("database connection pool established successfully")
	return NewPostgresStore(pool), nil
}

// EnsureDatabaseExists creates the target database through the postgres
// maintenance database when it does not exist yet.
func EnsureDatabaseExists(ctx context.Context, target *pgx.ConnConfig, logger *zap.Logger) error {
	database := target.Database

	admin := target.Copy()
	admin.Database = "postgres"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := pgx.ConnectConfig(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer conn.Close(context.Background())

	logger.Debug("checking if database exists", zap.String("database", database))

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := conn.QueryRow(ctx, query, database).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil
	}

	logger.Info("database does not exist, creating it", zap.String("database", database))

	// CREATE DATABASE cannot run inside a transaction.
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{database}.Sanitize())
	if _, err := conn.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	logger.Info("database created successfully", zap.String("database", database))
	return nil
}
