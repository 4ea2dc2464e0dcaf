package config

import (
  "fmt"
  "os"

  "gopkg.in/yaml.v3"

  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/utils"
)

// Config carries the service settings. Defaults come from the
// environment; an optional YAML file named by CONFIG_FILE overrides them.
type Config struct {
  Port                string      `yaml:"port"`
  LogMode             string      `yaml:"log_mode"`
  JWTSecretKey        string      `yaml:"jwt_secret_key"`
  AccessTokenTTL      int         `yaml:"access_token_ttl"`
  RefreshTokenTTL     int         `yaml:"refresh_token_ttl"`
  GeminiModel         string      `yaml:"gemini_model"`
  SuggestionCacheTTL  int         `yaml:"suggestion_cache_ttl"`
  AllowedOrigins      []string    `yaml:"allowed_origins"`
}

func Load(log *logger.Logger) (*Config, error) {
  cfg := &Config{
    Port:               utils.GetEnv("PORT", "8989", log),
    LogMode:            utils.GetEnv("LOG_MODE", "development", log),
    JWTSecretKey:       utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
    AccessTokenTTL:     utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log),
    RefreshTokenTTL:    utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log),
    GeminiModel:        utils.GetEnv("GEMINI_MODEL", "gemini-2.0-flash", log),
    SuggestionCacheTTL: utils.GetEnvAsInt("SUGGESTION_CACHE_TTL", 300, log),
    AllowedOrigins: []string{
      "http://localhost:5173",
      "http://localhost:3000",
    },
  }

  path := utils.GetEnv("CONFIG_FILE", "", log)
  if path == "" {
    return cfg, nil
  }
  data, err := os.ReadFile(path)
  if err != nil {
    return nil, fmt.Errorf("config: read %s: %w", path, err)
  }
  if err := yaml.Unmarshal(data, cfg); err != nil {
    return nil, fmt.Errorf("config: parse %s: %w", path, err)
  }
  return cfg, nil
}
