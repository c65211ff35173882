package postgres

import (
	"fmt"
	"strings"
	"time"

	"swiftdrop/internal/adapters/out/postgres/addressrepo"
	"swiftdrop/internal/adapters/out/postgres/orderrepo"
	"swiftdrop/internal/adapters/out/postgres/sessionrepo"
	"swiftdrop/internal/adapters/out/postgres/userrepo"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options select and configure the database connection.
type Options struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SslMode    string
	SQLitePath string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
	// Logger receives the SQL log; nil discards it.
	Logger *zap.Logger
}

// SlowQueryThreshold marks queries logged as slow at warn level.
const SlowQueryThreshold = 200 * time.Millisecond

// DSN builds the PostgreSQL connection string.
func (o Options) DSN() string {
	sslMode := o.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, sslMode)
}

// Open connects to the configured database. SQLite is limited to a single
// connection, which also serializes transactions.
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres, "":
		dialector = gormpostgres.Open(opts.DSN())
	case DriverSQLite:
		path := opts.SQLitePath
		if path == "" {
			path = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(path + pragmaSeparator(path) + "_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         newGormLogger(opts.Logger, opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if opts.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return db, nil
}

// newGormLogger writes GORM output through zap. A missing row is an expected
// outcome of lookups and is not logged as an error.
func newGormLogger(log *zap.Logger, level logger.LogLevel) logger.Interface {
	if log == nil {
		log = zap.NewNop()
	}
	if level == 0 {
		level = logger.Warn
	}

	return logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             SlowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&addressrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.TrackingDTO{},
		&sessionrepo.SessionDTO{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func pragmaSeparator(path string) string {
	if strings.Contains(path, "?") {
		return "&"
	}
	return "?"
}
