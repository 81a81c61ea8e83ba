package config

import (
	"os"
	"strconv"
	"strings"

	"travelplanner/internal/db"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DatabaseURL string
	AutoMigrate bool
	CORSOrigins []string
	CatalogPath string
	LogLevel    string
	LogFormat   string
}

// LoadEnv reads configuration from the process environment, after merging an
// optional .env file from the working directory (existing variables win).
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("config: could not read .env file")
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dbURL := strings.TrimSpace(os.Getenv("TRAVEL_PLANNER_DB_URL"))
	if dbURL == "" {
		dbURL = db.DefaultURL
	}

	autoMigrate := true
	if v := strings.TrimSpace(os.Getenv("TRAVEL_PLANNER_AUTO_MIGRATE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			autoMigrate = b
		}
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DatabaseURL: dbURL,
		AutoMigrate: autoMigrate,
		CORSOrigins: origins,
		CatalogPath: strings.TrimSpace(os.Getenv("TRAVEL_PLANNER_CATALOG_PATH")),
		LogLevel:    logLevel,
		LogFormat:   strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT"))),
	}
}

// ConfigureLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (e Env) ConfigureLogging() {
	level, err := logrus.ParseLevel(e.LogLevel)
	if err != nil {
		logrus.WithField("log_level", e.LogLevel).Warn("config: unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if e.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
