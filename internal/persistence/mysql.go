package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spec-kit/org-service/internal/config"
	"github.com/spec-kit/org-service/internal/repository/gormstore"
)

// MySQL wraps a gorm connection to MySQL.
type MySQL struct {
	DB *gorm.DB
}

// NewMySQL opens the connection, applies pool settings and optionally migrates the schema.
func NewMySQL(ctx context.Context, cfg config.MySQLConfig, env string, logger *zap.Logger) (*MySQL, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("mysql: %w", ErrNoDSN)
	}

	logLevel := gormlogger.Error
	if env == "development" {
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifeSec > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSec) * time.Second)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	if cfg.AutoMigrate {
		if err := gormstore.AutoMigrate(db.WithContext(ctx)); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate mysql: %w", err)
		}
		logger.Info("mysql schema migrated")
	}

	logger.Info("connected to mysql")
	return &MySQL{DB: db}, nil
}

// Ping verifies connectivity.
func (m *MySQL) Ping(ctx context.Context) error {
	if m == nil || m.DB == nil {
		return errors.New("mysql not configured")
	}
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connections.
func (m *MySQL) Close() {
	if m == nil || m.DB == nil {
		return
	}
	if sqlDB, err := m.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
