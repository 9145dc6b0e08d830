package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the public Bitbucket Cloud REST endpoint used when
// BITBUCKET_API_URL is not set.
const DefaultAPIURL = "https://api.bitbucket.org/2.0"

// Config holds global CLI configuration
type Config struct {
	APIURL      string `validate:"required,url"`
	Workspace   string `validate:"required"`
	Token       string
	Username    string
	AppPassword string
}

var (
	GlobalCfg    *Config
	GlobalLogger *slog.Logger
)

// Error reports bad or missing environment configuration.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return "configuration: " + e.msg
}

func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// HasBasicAuth reports whether a complete username/app-password pair is set.
func (c *Config) HasBasicAuth() bool {
	return c.Username != "" && c.AppPassword != ""
}

// Load resolves configuration from environment variables, optionally loading
// an .env file first. Auth requires exactly one of a token or a complete
// username/app-password pair.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errorf("failed to load env file %s: %v", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault("api_url", DefaultAPIURL)
	for key, env := range map[string]string{
		"api_url":      "BITBUCKET_API_URL",
		"workspace":    "BITBUCKET_WORKSPACE",
		"token":        "BITBUCKET_TOKEN",
		"username":     "BITBUCKET_USERNAME",
		"app_password": "BITBUCKET_APP_PASSWORD",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errorf("failed to bind %s: %v", env, err)
		}
	}

	cfg := &Config{
		APIURL:      v.GetString("api_url"),
		Workspace:   v.GetString("workspace"),
		Token:       v.GetString("token"),
		Username:    v.GetString("username"),
		AppPassword: v.GetString("app_password"),
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			switch errs[0].Field() {
			case "Workspace":
				return nil, errorf("BITBUCKET_WORKSPACE must be set")
			case "APIURL":
				return nil, errorf("BITBUCKET_API_URL is not a valid URL")
			}
		}
		return nil, errorf("invalid configuration: %v", err)
	}

	switch {
	case cfg.Token == "" && cfg.Username == "" && cfg.AppPassword == "":
		return nil, errorf("either BITBUCKET_TOKEN or BITBUCKET_USERNAME/BITBUCKET_APP_PASSWORD must be set")
	case cfg.Token != "" && (cfg.Username != "" || cfg.AppPassword != ""):
		return nil, errorf("BITBUCKET_TOKEN and BITBUCKET_USERNAME/BITBUCKET_APP_PASSWORD are mutually exclusive")
	case cfg.Token == "" && !cfg.HasBasicAuth():
		return nil, errorf("both BITBUCKET_USERNAME and BITBUCKET_APP_PASSWORD must be set for basic auth")
	}

	GlobalCfg = cfg
	return cfg, nil
}
