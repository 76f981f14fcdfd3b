package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	NaverMap NaverMapConfig
	Map      MapConfig
	Seed     SeedConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	// ChangeStream - стрим, куда публикуются изменения объявлений
	ChangeStream   string
	PublishTimeout time.Duration
}

type NaverMapConfig struct {
	// ClientID - идентификатор клиента NCP; без него карта остаётся в состоянии загрузки
	ClientID       string
	BaseURL        string
	RequestTimeout int
}

type MapConfig struct {
	CenterLat float64
	CenterLng float64
	Zoom      int
}

type SeedConfig struct {
	Enabled bool
	File    string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
}

// Load читает конфигурацию из окружения. Файл .env необязателен:
// при его отсутствии используются переменные окружения и значения по умолчанию.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Redis: RedisConfig{
			Enabled:        v.GetBool("REDIS_ENABLED"),
			Host:           v.GetString("REDIS_HOST"),
			Port:           v.GetInt("REDIS_PORT"),
			Password:       v.GetString("REDIS_PASSWORD"),
			DB:             v.GetInt("REDIS_DB"),
			ChangeStream:   v.GetString("CHANGE_STREAM"),
			PublishTimeout: time.Duration(v.GetInt("REDIS_PUBLISH_TIMEOUT")) * time.Millisecond,
		},
		NaverMap: NaverMapConfig{
			ClientID:       strings.TrimSpace(v.GetString("NAVER_MAP_CLIENT_ID")),
			BaseURL:        strings.TrimRight(v.GetString("NAVER_MAP_BASE_URL"), "/"),
			RequestTimeout: v.GetInt("NAVER_MAP_TIMEOUT"),
		},
		Map: MapConfig{
			CenterLat: v.GetFloat64("MAP_CENTER_LAT"),
			CenterLng: v.GetFloat64("MAP_CENTER_LNG"),
			Zoom:      v.GetInt("MAP_ZOOM"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("SEED_ENABLED"),
			File:    v.GetString("SEED_FILE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CHANGE_STREAM", "stream:property:changes")
	v.SetDefault("REDIS_PUBLISH_TIMEOUT", 2000)

	v.SetDefault("NAVER_MAP_BASE_URL", "https://openapi.map.naver.com")
	v.SetDefault("NAVER_MAP_TIMEOUT", 10)

	// Сеул, мэрия
	v.SetDefault("MAP_CENTER_LAT", 37.5665)
	v.SetDefault("MAP_CENTER_LNG", 126.978)
	v.SetDefault("MAP_ZOOM", 12)

	v.SetDefault("SEED_ENABLED", true)

	v.SetDefault("WORKER_ENABLED", false)
	v.SetDefault("WORKER_CONSUMER_GROUP", "property-change-audit")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
