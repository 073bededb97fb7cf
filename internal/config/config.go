package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings. The defaults allow every origin, method and header.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"*"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"*"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"600"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ProviderConfig describes the upstream dictionary endpoint and the fixed
// header set it expects from a browser client.
type ProviderConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"PROVIDER_BASE_URL"        env-default:"https://dict.youdao.com/jsonapi_s"`
	Timeout        time.Duration `yaml:"timeout"         env:"PROVIDER_TIMEOUT"         env-default:"15s"`
	KeyFrom        string        `yaml:"keyfrom"         env:"PROVIDER_KEYFROM"         env-default:"webdict"`
	Accept         string        `yaml:"accept"          env:"PROVIDER_ACCEPT"          env-default:"application/json, text/plain, */*"`
	AcceptLanguage string        `yaml:"accept_language" env:"PROVIDER_ACCEPT_LANGUAGE" env-default:"zh-CN,zh;q=0.9"`
	Origin         string        `yaml:"origin"          env:"PROVIDER_ORIGIN"          env-default:"https://youdao.com"`
	Referer        string        `yaml:"referer"         env:"PROVIDER_REFERER"         env-default:"https://youdao.com/"`
	UserAgent      string        `yaml:"user_agent"      env:"PROVIDER_USER_AGENT"      env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"`
}

// LookupConfig holds request validation settings for /define.
type LookupConfig struct {
	DefaultLang   string `yaml:"default_lang"    env:"LOOKUP_DEFAULT_LANG"    env-default:"en"`
	MaxWordLength int    `yaml:"max_word_length" env:"LOOKUP_MAX_WORD_LENGTH" env-default:"128"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
