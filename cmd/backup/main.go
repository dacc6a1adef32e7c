package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/store"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("envfile", ".env", "optional file with secrets as env vars")
	credentialsFile := flag.String("gd-creds", "./drive-credentials.json", "google drive service account credentials json")
	folderName := flag.String("folder", backup.DefaultFolderName, "google drive folder to keep backups in")
	keep := flag.Int("keep", 30, "number of backups to keep (0 keeps all)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		fmt.Printf("no env file loaded [%s]: %s\n", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "fittrack-backup",
	})

	log.Println("starting fittrack backup ...")

	if *credentialsFile == "" {
		log.Fatalln("google drive credentials json not specified")
	}
	credentialsFileBytes, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read credentials file: %v", err)
	}

	st, closeStore, err := openStore(ctx, cfg, secrets)
	if err != nil {
		log.Fatalf("open store: %s", err)
	}
	defer closeStore()

	driveBackup, err := backup.NewGoogleDriveBackupService(
		ctx,
		*folderName,
		option.WithCredentialsJSON(credentialsFileBytes),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		log.Fatalf("failed to create google drive backup service: %s", err)
	}

	res, err := backup.NewService(st, driveBackup, *keep).Run(ctx, time.Now())
	if err != nil {
		log.Fatalf("backup failed: %s", err)
	}

	log.Printf("backup %s saved: %s (old backups removed: %d)", res.FileName, res.FileID, res.Pruned)
}

func openStore(ctx context.Context, cfg *config.Config, secrets *config.Secrets) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: secrets.RedisPassword,
			DB:       0, // use default DB
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return store.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	case config.StoreBackendPostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: secrets.PostgresPassword,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("new db pool: %w", err)
		}
		return store.NewPsqlStore(dbPool), dbPool.Close, nil
	default:
		return nil, nil, fmt.Errorf("store backend [%s] cannot be backed up", cfg.StoreBackend)
	}
}
