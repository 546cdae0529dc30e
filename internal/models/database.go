package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "weekly-savings-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: 200 * time.Millisecond,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "weekly_savings:after_query", queryCallback},
		{db.Callback().Query().After("*"), "weekly_savings:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "weekly_savings:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "weekly_savings:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "weekly_savings:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "weekly_savings:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "weekly_savings:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err = c.processor.Register(c.name, c.fn)
		if err != nil {
			return fmt.Errorf("could not register callback %s: %w", c.name, err)
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name is used as the name of the resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with user friendly errors
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed") {
		db.Error = ErrIDNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// The error is logged and a general message is returned.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if isGeneral(db.Error) {
		log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// isGeneral reports if err is a driver error the user cannot act on.
func isGeneral(err error) bool {
	// "sql: database is closed" is hard-coded in database/sql
	return err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{})
}

// GeneralError replaces driver errors with ErrGeneral.
//
// Errors of statements are replaced by the callbacks already, this is
// needed for errors that happen outside of them, e.g. when a transaction
// is started.
func GeneralError(err error) error {
	if err == nil || !isGeneral(err) {
		return err
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return ErrGeneral
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Expense{}, Income{}, Card{}, SavingsGoal{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
