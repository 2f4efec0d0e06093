package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type AppConfig struct {
	Mode     string         `yaml:"mode"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Storage  StorageConfig  `yaml:"storage"`
	EventBus EventBusConfig `yaml:"eventbus"`
}

type ServerConfig struct {
	Port               int      `yaml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// StorageConfig describes the S3 bucket that receives uploaded post images.
// An empty Bucket disables binary uploads.
type StorageConfig struct {
	Region        string `yaml:"region"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	KeyPrefix     string `yaml:"key_prefix"`
}

// EventBusConfig configures domain event publishing. An empty Brokers disables it.
type EventBusConfig struct {
	Brokers    string `yaml:"brokers"`
	Topic      string `yaml:"topic"`
	Partitions int    `yaml:"partitions"`
}

// Load reads .env and config.yaml from the base path, then applies environment overrides.
// A missing config.yaml is not an error: defaults and env values are used instead.
func Load() (*AppConfig, error) {
	base := GetBasePath()
	_ = godotenv.Load(filepath.Join(base, ENV_FILE))

	c := defaults()
	data, err := os.ReadFile(filepath.Join(base, CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	if err := applyEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		Mode:    ModeDevelopment,
		Server:  ServerConfig{Port: 3000},
		Logging: LoggingConfig{Level: "info"},
		Mongo: MongoConfig{
			URI:    "mongodb://localhost:27017",
			DBName: "blog",
		},
		Storage:  StorageConfig{KeyPrefix: "posts/"},
		EventBus: EventBusConfig{Topic: "blog-api.events", Partitions: 3},
	}
}

func applyEnv(c *AppConfig) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setString("APP_ENV", &c.Mode)
	setString("LOG_LEVEL", &c.Logging.Level)
	setString("MONGO_URI", &c.Mongo.URI)
	setString("MONGO_DB_NAME", &c.Mongo.DBName)
	setString("AWS_REGION", &c.Storage.Region)
	setString("S3_BUCKET", &c.Storage.Bucket)
	setString("S3_PUBLIC_BASE_URL", &c.Storage.PublicBaseURL)
	setString("KAFKA_BOOTSTRAP_SERVERS", &c.EventBus.Brokers)
	setString("KAFKA_TOPIC", &c.EventBus.Topic)

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return fmt.Errorf("invalid PORT %q", v)
		}
		c.Server.Port = port
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSAllowedOrigins = origins
	}

	c.Mode = strings.ToLower(c.Mode)
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Mode == ModeProduction
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
