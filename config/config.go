package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Session      Session
	Redis        Redis
	Admin        Admin
	Gemini       Gemini
	PasswordCost int
}

type Server struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
}

type Database struct {
	Driver   string // "postgres", "mysql" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file
}

// DefaultSessionSecret is only meant for local development.
const DefaultSessionSecret = "default_super_secret_exam_key_for_session_management"

type Session struct {
	Store        string // "jwt" or "redis"
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Admin holds the credentials of the account seeded when no admin exists.
type Admin struct {
	Username string
	Password string
}

type Gemini struct {
	APIKey string
	Model  string
}

// UsesDefaultSecret reports whether session tokens are signed with the
// built-in secret, which anyone can read in the source.
func (s Session) UsesDefaultSecret() bool {
	return s.Secret == "" || s.Secret == DefaultSessionSecret
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_NAME", "examdb")
	v.SetDefault("DATABASE_PATH", "examdb.sqlite")

	v.SetDefault("SESSION_STORE", "jwt")
	v.SetDefault("SESSION_SECRET", DefaultSessionSecret)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_SECURE", false)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("PASSWORD_HASH_COST", 10)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "adminpassword")

	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return load(v), nil
}

func load(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")

	config.Session.Store = strings.ToLower(v.GetString("SESSION_STORE"))
	config.Session.Secret = v.GetString("SESSION_SECRET")
	config.Session.TTL = v.GetDuration("SESSION_TTL")
	config.Session.CookieSecure = v.GetBool("SESSION_COOKIE_SECURE")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")

	config.PasswordCost = v.GetInt("PASSWORD_HASH_COST")
	config.Admin.Username = v.GetString("ADMIN_USERNAME")
	config.Admin.Password = v.GetString("ADMIN_PASSWORD")

	config.Gemini.APIKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")

	if config.Session.UsesDefaultSecret() {
		log.Warn().Str("sessionStore", config.Session.Store).Msg("SESSION_SECRET is not set; session cookies are signed with the public default secret. Set SESSION_SECRET in production.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Str("sessionStore", config.Session.Store).
		Bool("geminiEnabled", config.Gemini.APIKey != "").
		Msg("Config loaded")
	return &config
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
