package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	aiModel "sportan_backend/internals/features/ai/model"
	coachingModel "sportan_backend/internals/features/coaching/model"
	identityModel "sportan_backend/internals/features/identity/model"
	trainingModel "sportan_backend/internals/features/training/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL (Supabase)...")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Note: when running behind PgBouncer, point host/port at the pooler and
		// keep PreferSimpleProtocol=true.
		sslmode := getenv("DB_SSLMODE", "require")
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sportan&options=-c statement_timeout=3000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the model set. Ordering matters for
// the FK chain: profiles first, then groups, then training and report tables.
func Migrate() {
	if err := DB.AutoMigrate(
		&identityModel.CoachModel{},
		&identityModel.AthleteModel{},
		&identityModel.ParentModel{},
		&coachingModel.GroupModel{},
		&coachingModel.GroupAthleteModel{},
		&trainingModel.AssignedWorkoutModel{},
		&trainingModel.WorkoutModel{},
		&aiModel.TalentReportModel{},
		&aiModel.WeeklyInsightModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func WarmUpQueries() {
	// light ping so the pool is filled and ready before traffic arrives
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
