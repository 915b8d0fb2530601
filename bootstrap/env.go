package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	CatalogSourceBuiltin = "builtin"
	CatalogSourceFile    = "file"
	CatalogSourceMongo   = "mongo"
)

type Env struct {
	AppEnv                 string `mapstructure:"APP_ENV"`
	ServerAddress          string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout         int    `mapstructure:"CONTEXT_TIMEOUT"`
	CatalogSource          string `mapstructure:"CATALOG_SOURCE"`
	CatalogFile            string `mapstructure:"CATALOG_FILE"`
	DBHost                 string `mapstructure:"DB_HOST"`
	DBPort                 string `mapstructure:"DB_PORT"`
	DBUser                 string `mapstructure:"DB_USER"`
	DBPass                 string `mapstructure:"DB_PASS"`
	DBName                 string `mapstructure:"DB_NAME"`
	DBSeed                 bool   `mapstructure:"DB_SEED"`
	SessionTokenSecret     string `mapstructure:"SESSION_TOKEN_SECRET"`
	SessionTokenExpiryHour int    `mapstructure:"SESSION_TOKEN_EXPIRY_HOUR"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	LogFormat              string `mapstructure:"LOG_FORMAT"`
}

var envDefaults = map[string]interface{}{
	"APP_ENV":                   "development",
	"SERVER_ADDRESS":            ":8080",
	"CONTEXT_TIMEOUT":           2,
	"CATALOG_SOURCE":            CatalogSourceBuiltin,
	"CATALOG_FILE":              "catalog.yaml",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "27017",
	"DB_USER":                   "",
	"DB_PASS":                   "",
	"DB_NAME":                   "vibejewel",
	"DB_SEED":                   false,
	"SESSION_TOKEN_SECRET":      "",
	"SESSION_TOKEN_EXPIRY_HOUR": 24,
	"LOG_LEVEL":                 "info",
	"LOG_FORMAT":                "",
}

// NewEnv 读取 .env（不存在时跳过）与环境变量
func NewEnv(envFile string) (*Env, error) {
	v := viper.New()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *Env) validate() error {
	e.CatalogSource = strings.ToLower(strings.TrimSpace(e.CatalogSource))
	switch e.CatalogSource {
	case CatalogSourceBuiltin, CatalogSourceFile, CatalogSourceMongo:
	default:
		return fmt.Errorf("CATALOG_SOURCE 无效: %q", e.CatalogSource)
	}

	if e.ContextTimeout <= 0 {
		return errors.New("CONTEXT_TIMEOUT 必须大于0")
	}
	if e.SessionTokenExpiryHour <= 0 {
		return errors.New("SESSION_TOKEN_EXPIRY_HOUR 必须大于0")
	}
	if e.SessionTokenSecret == "" && e.IsProduction() {
		return errors.New("生产环境必须设置 SESSION_TOKEN_SECRET")
	}
	if e.LogFormat == "" {
		e.LogFormat = "json"
		if !e.IsProduction() {
			e.LogFormat = "console"
		}
	}
	return nil
}

func (e *Env) IsProduction() bool {
	return e.AppEnv == "production"
}

// MongoURI DB_USER 为空时不带认证信息
func (e *Env) MongoURI() string {
	if e.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%s", e.DBHost, e.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", e.DBUser, e.DBPass, e.DBHost, e.DBPort)
}
