package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Geocoder GeocoderConfig
	Redis    RedisConfig
	Map      MapConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// BackendConfig points at the remote places API.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// GeocoderConfig points at the external Nominatim-compatible provider.
type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	// FallbackSlot is the single key holding the JSON place collection.
	FallbackSlot string
}

// MapConfig tunes the reconciler's camera behavior.
type MapConfig struct {
	DefaultZoom int
	FocusZoom   int

	// PanDuration is the surface's camera animation time. The popup-open
	// delay must exceed it or the popup lands before the camera settles.
	PanDuration time.Duration
	PopupDelay  time.Duration

	BoundsPadding float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Backend: BackendConfig{
			BaseURL:        viper.GetString("BACKEND_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("BACKEND_REQUEST_TIMEOUT")) * time.Second,
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODER_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODER_REQUEST_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:         viper.GetString("REDIS_HOST"),
			Port:         viper.GetInt("REDIS_PORT"),
			Password:     viper.GetString("REDIS_PASSWORD"),
			DB:           viper.GetInt("REDIS_DB"),
			FallbackSlot: viper.GetString("REDIS_FALLBACK_SLOT"),
		},
		Map: MapConfig{
			DefaultZoom:   viper.GetInt("MAP_DEFAULT_ZOOM"),
			FocusZoom:     viper.GetInt("MAP_FOCUS_ZOOM"),
			PanDuration:   time.Duration(viper.GetInt("MAP_PAN_DURATION_MS")) * time.Millisecond,
			PopupDelay:    time.Duration(viper.GetInt("MAP_POPUP_DELAY_MS")) * time.Millisecond,
			BoundsPadding: viper.GetFloat64("MAP_BOUNDS_PADDING"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = 10 * time.Second
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "travelmap/1.0"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10 * time.Second
	}
	if cfg.Redis.FallbackSlot == "" {
		cfg.Redis.FallbackSlot = "places:fallback"
	}
	if cfg.Map.DefaultZoom == 0 {
		cfg.Map.DefaultZoom = 5
	}
	if cfg.Map.FocusZoom == 0 {
		cfg.Map.FocusZoom = 10
	}
	if cfg.Map.PanDuration == 0 {
		cfg.Map.PanDuration = 250 * time.Millisecond
	}
	if cfg.Map.PopupDelay == 0 {
		cfg.Map.PopupDelay = cfg.Map.PanDuration + 50*time.Millisecond
	}
	if cfg.Map.BoundsPadding == 0 {
		cfg.Map.BoundsPadding = 0.1
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
