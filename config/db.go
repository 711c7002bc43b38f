package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_booking")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// resolveDialector picks the backend: MySQL by default, SQLite when
// DB_DRIVER=sqlite (local dev; the same models drive both).
func resolveDialector() (gorm.Dialector, error) {
	driver := strings.ToLower(utils.EnvOrDefault("DB_DRIVER", "mysql"))
	switch driver {
	case "sqlite":
		path := utils.EnvOrDefault("SQLITE_PATH", "hotelbooking.db")
		return sqlite.Open(path), nil
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite)", driver)
	}
}

// AutoMigrate creates/updates the four core tables, parents first. The
// unique (room_id, night_date) index on room_nights comes from the model
// tags; it is the constraint that prevents double booking, not just an
// index.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.RoomNight{},
	)
}

func ConnectDatabase() error {
	dialector, err := resolveDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
		// Maps driver duplicate-key errors onto gorm.ErrDuplicatedKey so
		// services.IsUniqueViolation behaves the same on every backend.
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db
	return AutoMigrate(db)
}
