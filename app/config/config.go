package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB   *sql.DB
	Mail MailConfig

	Port string

	// Fee balance above which a student's academic dashboard is
	// restricted, in the school's base currency unit.
	FeeRestrictionThreshold int64

	// Default amount stamped on a synthesized building-rent row.
	MonthlyRentAmount int64
}

type MailConfig struct {
	SendGridKey string
	From        string
	ContactTo   string
}

var AppConfig *Config

// Load reads .env (if present), opens the database connection and builds
// the application config.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := sql.Open("postgres", databaseURL())
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:   db,
		Port: getEnv("PORT", "8080"),
		Mail: MailConfig{
			SendGridKey: os.Getenv("SENDGRID_API_KEY"),
			From:        getEnv("MAIL_FROM", "no-reply@oakside-schools.example"),
			ContactTo:   getEnv("CONTACT_INBOX", "office@oakside-schools.example"),
		},
		FeeRestrictionThreshold: getEnvInt64("FEE_RESTRICTION_THRESHOLD", 0),
		MonthlyRentAmount:       getEnvInt64("MONTHLY_RENT_AMOUNT", 32000),
	}
	log.Println("Database connected successfully")
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "oakside"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
