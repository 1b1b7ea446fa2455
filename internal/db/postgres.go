package db

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/safedrive/telematics-api/internal/pkg/envutil"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(logg *logger.Logger) (*PostgresService, error) {
	serviceLog := logg.With("service", "PostgresService")

	postgresHost := envutil.GetEnv("POSTGRES_HOST", "localhost", logg)
	postgresPort := envutil.GetEnv("POSTGRES_PORT", "5432", logg)
	postgresUser := envutil.GetEnv("POSTGRES_USER", "postgres", logg)
	postgresPassword := envutil.GetEnv("POSTGRES_PASSWORD", "", logg)
	postgresName := envutil.GetEnv("POSTGRES_NAME", "safedrive", logg)
	slowQueryMs := envutil.GetEnvAsInt("POSTGRES_SLOW_QUERY_MS", 1000, logg)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser,
		postgresPassword,
		postgresHost,
		postgresPort,
		postgresName,
	)

	gormLog := gormLogger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Duration(slowQueryMs) * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrate(s.db); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

// foreignKeys is the cascade topology of the schema: deleting a parent must
// take its dependents with it, while optional references null out instead.
var foreignKeys = []struct {
	table      string
	constraint string
	column     string
	refTable   string
	onDelete   string
}{
	{"trip", "fk_trip_driver_profile_id", "driver_profile_id", "driver_profile", "CASCADE"},
	{"raw_sensor_data", "fk_raw_sensor_data_trip_id", "trip_id", "trip", "SET NULL"},
	{"raw_sensor_data", "fk_raw_sensor_data_location_id", "location_id", "location", "SET NULL"},
	{"unsafe_behaviour", "fk_unsafe_behaviour_trip_id", "trip_id", "trip", "CASCADE"},
	{"unsafe_behaviour", "fk_unsafe_behaviour_driver_profile_id", "driver_profile_id", "driver_profile", "CASCADE"},
	{"unsafe_behaviour", "fk_unsafe_behaviour_location_id", "location_id", "location", "SET NULL"},
	{"causes", "fk_causes_unsafe_behaviour_id", "unsafe_behaviour_id", "unsafe_behaviour", "CASCADE"},
	{"driving_tips", "fk_driving_tips_profile_id", "profile_id", "driver_profile", "CASCADE"},
	{"nlg_report", "fk_nlg_report_driver_profile_id", "driver_profile_id", "driver_profile", "CASCADE"},
	{"ai_model_inputs", "fk_ai_model_inputs_trip_id", "trip_id", "trip", "CASCADE"},
}

// AutoMigrate creates or updates every entity table and then installs the
// cascade constraints. Shared between the runtime service and the test
// harness so both see the same schema.
func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&types.DriverProfile{},
		&types.Trip{},
		&types.Location{},
		&types.RawSensorData{},
		&types.UnsafeBehaviour{},
		&types.Cause{},
		&types.DrivingTip{},
		&types.Embedding{},
		&types.AIModelInput{},
		&types.NLGReport{},
	); err != nil {
		return err
	}

	for _, fk := range foreignKeys {
		refColumn := "id"
		stmt := fmt.Sprintf(
			`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q;
			 ALTER TABLE %q ADD CONSTRAINT %q
			 FOREIGN KEY (%q) REFERENCES %q(%q) ON DELETE %s`,
			fk.table, fk.constraint,
			fk.table, fk.constraint,
			fk.column, fk.refTable, refColumn, fk.onDelete,
		)
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.constraint, err)
		}
	}
	return nil
}
