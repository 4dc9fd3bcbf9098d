package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/yushi512/mitasai-casher/internal/adapter/console"
	"github.com/yushi512/mitasai-casher/internal/adapter/export"
	"github.com/yushi512/mitasai-casher/internal/adapter/storage"
	"github.com/yushi512/mitasai-casher/internal/config"
	"github.com/yushi512/mitasai-casher/internal/core/service"
	"github.com/yushi512/mitasai-casher/internal/port"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.Storage, err)
	}
	defer cleanup()

	writer, err := export.NewExcelWriter(cfg.ExportDir)
	if err != nil {
		log.Fatalf("failed to prepare export dir: %v", err)
	}

	catalog := service.NewCatalogService(store)
	cart := service.NewCartService(catalog)
	exporter := service.NewExportService(writer)
	sales := service.NewSalesService(store, catalog, cart, exporter)

	if err := catalog.Load(ctx); err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	if err := sales.Load(ctx); err != nil {
		log.Fatalf("failed to load sales ledger: %v", err)
	}

	if cfg.SheetsEndpoint != "" {
		// Placeholder contract for the remote sheets sync; nothing
		// consumes these settings yet.
		slog.Info("sheets sync configured but not wired in this build",
			"endpoint", cfg.SheetsEndpoint, "timeout", cfg.SheetsTimeout)
	}

	ui := console.New(catalog, cart, sales, os.Stdin, os.Stdout)
	if err := ui.Run(ctx); err != nil {
		log.Fatalf("console error: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (port.BlobStore, func(), error) {
	switch cfg.Storage {
	case config.BackendFile:
		fs, err := storage.NewFileStore(cfg.StateDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil

	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		slog.Info("connected to redis", "addr", cfg.RedisAddr)
		return storage.NewRedisStore(rdb), func() { rdb.Close() }, nil

	case config.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		store := storage.NewMySQLStore(db)
		if err := store.Init(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		slog.Info("connected to mysql")
		return store, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
