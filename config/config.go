package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	DB        DBConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
	Seed      SeedConfig
	Backup    BackupConfig
	Log       LogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StoreConfig picks the key-value backend: sqlite, postgres, redis or memory
type StoreConfig struct {
	Driver     string
	SQLitePath string
	KeyPrefix  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SchedulerConfig struct {
	// RecheckOnUpdate applies the slot conflict check to edits as well as
	// new appointments. Off by default: edits keep their slot unchecked.
	RecheckOnUpdate bool
}

type SeedConfig struct {
	Enabled bool
}

type BackupConfig struct {
	Driver string // fs or s3
	Dir    string
	S3     S3Config
}

type S3Config struct {
	Bucket          string
	Region          string
	Prefix          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
}

type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("STORE_DRIVER", "sqlite")
	v.SetDefault("STORE_SQLITE_PATH", "data/medicita.db")
	v.SetDefault("STORE_KEY_PREFIX", "med_")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "medicita")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SCHEDULER_RECHECK_ON_UPDATE", false)
	v.SetDefault("SEED_ENABLED", true)

	v.SetDefault("BACKUP_DRIVER", "fs")
	v.SetDefault("BACKUP_DIR", "backups")
	v.SetDefault("BACKUP_S3_BUCKET", "")
	v.SetDefault("BACKUP_S3_REGION", "us-east-1")
	v.SetDefault("BACKUP_S3_PREFIX", "")
	v.SetDefault("BACKUP_S3_ENDPOINT", "")
	v.SetDefault("BACKUP_S3_ACCESS_KEY_ID", "")
	v.SetDefault("BACKUP_S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("BACKUP_S3_PATH_STYLE", false)

	v.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig reads .env when present, then the environment. Every key has a
// default, so an empty environment yields a working local setup.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			Driver:     v.GetString("STORE_DRIVER"),
			SQLitePath: v.GetString("STORE_SQLITE_PATH"),
			KeyPrefix:  v.GetString("STORE_KEY_PREFIX"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Scheduler: SchedulerConfig{
			RecheckOnUpdate: v.GetBool("SCHEDULER_RECHECK_ON_UPDATE"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("SEED_ENABLED"),
		},
		Backup: BackupConfig{
			Driver: v.GetString("BACKUP_DRIVER"),
			Dir:    v.GetString("BACKUP_DIR"),
			S3: S3Config{
				Bucket:          v.GetString("BACKUP_S3_BUCKET"),
				Region:          v.GetString("BACKUP_S3_REGION"),
				Prefix:          v.GetString("BACKUP_S3_PREFIX"),
				Endpoint:        v.GetString("BACKUP_S3_ENDPOINT"),
				AccessKeyID:     v.GetString("BACKUP_S3_ACCESS_KEY_ID"),
				SecretAccessKey: v.GetString("BACKUP_S3_SECRET_ACCESS_KEY"),
				PathStyle:       v.GetBool("BACKUP_S3_PATH_STYLE"),
			},
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
