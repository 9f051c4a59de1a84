package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table the site owns, in migration order.
func Models() []any {
	return []any{
		&Hero{},
		&About{},
		&SocialLink{},
		&Project{},
		&Service{},
		&Skill{},
		&Tool{},
		&SocialItem{},
		&ContactSettings{},
		&Footer{},
		&FooterNavItem{},
	}
}

// Open connects to the database named by dsn.
//
// "mysql://" prefixed DSNs use the MySQL driver (the prefix is stripped, the
// rest is a go-sql-driver DSN); anything else is treated as a SQLite path,
// with an optional "sqlite://" or "file:" prefix.
func Open(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return gdb, nil
}

// Migrate creates or updates the content tables.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		trimmed = "designfolio.db"
	}

	switch {
	case strings.HasPrefix(trimmed, "mysql://"):
		return mysql.New(mysql.Config{
			DSN:               strings.TrimPrefix(trimmed, "mysql://"),
			DefaultStringSize: 191,
		}), nil
	case strings.HasPrefix(trimmed, "sqlite://"):
		trimmed = strings.TrimPrefix(trimmed, "sqlite://")
	}

	if !strings.HasPrefix(trimmed, "file:") {
		if err := ensureParentDir(trimmed); err != nil {
			return nil, err
		}
	}
	return sqlite.Open(trimmed), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
