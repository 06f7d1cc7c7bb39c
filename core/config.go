package core

import (
	"fmt"
	"log"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Password schemes used when comparing login credentials.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

// Publication backends of the shared stadium layer.
const (
	PublicationMemory   = "memory"
	PublicationRedis    = "redis"
	PublicationPostgres = "postgres"
)

type (
	Config struct {
		Env              string // DEV (local; default), TEST, QA, PROD
		Debug            bool
		TestMode         bool
		AppName          string
		Build            string
		WorkDir          string
		SecretKey        string
		DefaultFromEmail mail.Address
		FrontendBaseURL  string
		SendgridApiKey   string
		RollbarToken     string

		Server      ServerConfig
		Database    DatabaseConfig
		Redis       RedisConfig
		Auth        AuthConfig
		Publication PublicationConfig
	}

	ServerConfig struct {
		Host                      string
		Address                   string
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Enabled       bool
		Engine        string
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	RedisConfig struct {
		Address string
	}

	AuthConfig struct {
		EmailDomain      string
		RollNumberPrefix string
		OTPTTL           time.Duration
		DemoFallback     bool
		PasswordScheme   string
	}

	PublicationConfig struct {
		Backend string
	}
)

func (db DatabaseConfig) Address() string {
	return net.JoinHostPort(db.Host, db.Port)
}

// NewConfig loads the configuration of the current ENV from the environment and the optional `config/.env.<env>` file.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Campus Amenities")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "k9#vd2-sa!mnt8@e^d7q1z$campus(0x+f3w)g6h_pr&ju4lyr")
	v.SetDefault("defaultFromEmail", "Campus Amenities <noreply@psgitech.ac.in>")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("server.jwtRefreshExpirationDelta", 4*time.Hour)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "campus")
	v.SetDefault("database.user", "campus")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.disableTLS", false)

	v.SetDefault("redis.address", "localhost:6379")

	v.SetDefault("auth.emailDomain", "@psgitech.ac.in")
	v.SetDefault("auth.rollNumberPrefix", "7155")
	v.SetDefault("auth.otpTTL", 15*time.Minute)
	v.SetDefault("auth.demoFallback", true)
	v.SetDefault("auth.passwordScheme", PasswordSchemePlain)

	v.SetDefault("publication.backend", PublicationMemory)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	from, err := mail.ParseAddress(v.GetString("defaultFromEmail"))
	if err != nil {
		log.Fatalf("config.defaultFromEmail: %v", err)
	}

	conf := &Config{
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         env == "TEST",
		AppName:          v.GetString("appName"),
		Build:            v.GetString("build"),
		WorkDir:          wd,
		SecretKey:        v.GetString("secretKey"),
		DefaultFromEmail: *from,
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      v.GetString("server.host"),
			Address:                   v.GetString("server.address"),
			DebugHost:                 v.GetString("server.debugHost"),
			ShutdownTimeout:           v.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta:        v.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: v.GetDuration("server.jwtRefreshExpirationDelta"),
		},
		Database: DatabaseConfig{
			Enabled:       v.GetBool("database.enabled"),
			Engine:        v.GetString("database.engine"),
			Host:          v.GetString("database.host"),
			Port:          v.GetString("database.port"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			DisableTLS:    v.GetBool("database.disableTLS"),
		},
		Redis: RedisConfig{
			Address: v.GetString("redis.address"),
		},
		Auth: AuthConfig{
			EmailDomain:      v.GetString("auth.emailDomain"),
			RollNumberPrefix: v.GetString("auth.rollNumberPrefix"),
			OTPTTL:           v.GetDuration("auth.otpTTL"),
			DemoFallback:     v.GetBool("auth.demoFallback"),
			PasswordScheme:   strings.ToLower(v.GetString("auth.passwordScheme")),
		},
		Publication: PublicationConfig{
			Backend: strings.ToLower(v.GetString("publication.backend")),
		},
	}
	if err = conf.validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return conf
}

func (conf *Config) validate() error {
	switch conf.Auth.PasswordScheme {
	case PasswordSchemePlain, PasswordSchemeBcrypt:
	default:
		return fmt.Errorf("unknown auth.passwordScheme %q", conf.Auth.PasswordScheme)
	}
	switch conf.Publication.Backend {
	case PublicationMemory, PublicationRedis:
	case PublicationPostgres:
		if !conf.Database.Enabled {
			return fmt.Errorf("publication.backend %q requires database.enabled", conf.Publication.Backend)
		}
	default:
		return fmt.Errorf("unknown publication.backend %q", conf.Publication.Backend)
	}
	return nil
}

// NewTestConfig returns the configuration used by tests: no .env lookup, no external collaborators.
func NewTestConfig() *Config {
	from, _ := mail.ParseAddress("Campus Amenities <noreply@psgitech.ac.in>")
	return &Config{
		Env:              "TEST",
		Debug:            false,
		TestMode:         true,
		AppName:          "Campus Amenities",
		Build:            "test",
		SecretKey:        "test-secret",
		DefaultFromEmail: *from,
		FrontendBaseURL:  "http://localhost:3000",
		Server: ServerConfig{
			Host:                      "localhost",
			ShutdownTimeout:           time.Second,
			JWTExpirationDelta:        7 * 24 * time.Hour,
			JWTRefreshExpirationDelta: 4 * time.Hour,
		},
		Auth: AuthConfig{
			EmailDomain:      "@psgitech.ac.in",
			RollNumberPrefix: "7155",
			OTPTTL:           15 * time.Minute,
			DemoFallback:     true,
			PasswordScheme:   PasswordSchemePlain,
		},
		Publication: PublicationConfig{Backend: PublicationMemory},
	}
}
