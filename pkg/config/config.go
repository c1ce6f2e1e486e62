package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"
)

const EnvProd = "production"
const EnvLocal = "local"

const prefix = "SEQDASH_"

var C BaseConfig

type BaseConfig struct {
	// Upstream data API
	SourceURL      string
	SourceTimeout  time.Duration
	SourceCacheTTL time.Duration

	// Sessions
	SessionAuthentication string
	SessionEncryption     string

	// Webserver
	WebserverPort string
	Domain        string

	// Other
	Environment string
	ShortName   string

	// Not set from ENV
	Version string
	Commits string
}

func Init(version string, commits string) (err error) {

	C.Version = version
	C.Commits = commits

	C.SourceURL = os.Getenv(prefix + "SOURCE_URL")
	C.SessionAuthentication = os.Getenv(prefix + "SESSION_AUTHENTICATION")
	C.SessionEncryption = os.Getenv(prefix + "SESSION_ENCRYPTION")
	C.WebserverPort = os.Getenv(prefix + "PORT")
	C.Domain = os.Getenv(prefix + "DOMAIN")
	C.Environment = os.Getenv(prefix + "ENV")
	C.ShortName = os.Getenv(prefix + "SHORT_NAME")

	C.SourceTimeout = secondsEnv("SOURCE_TIMEOUT_SECONDS", 30)
	C.SourceCacheTTL = secondsEnv("SOURCE_CACHE_SECONDS", 120)

	// Fallbacks
	setFallback(&C.Environment, EnvLocal)
	setFallback(&C.ShortName, "Seqdash")

	if IsLocal() {
		setFallback(&C.WebserverPort, "8081")
		setFallback(&C.Domain, "http://localhost:8081")
		setFallback(&C.SourceURL, "http://localhost:8000")
	}

	switch {
	case C.SourceURL == "":
		err = errors.New("missing source url env var")
	case C.WebserverPort == "":
		err = errors.New("missing port env var")
	default:
		_, err = url.Parse(C.SourceURL)
	}

	return err
}

func setFallback(item *string, fallback string) {
	if *item == "" {
		*item = fallback
	}
}

func secondsEnv(key string, fallback int) time.Duration {

	i, err := strconv.Atoi(os.Getenv(prefix + key))
	if err != nil || i <= 0 {
		i = fallback
	}

	return time.Duration(i) * time.Second
}

func IsLocal() bool {
	return C.Environment == EnvLocal
}

func IsProd() bool {
	return C.Environment == EnvProd
}

func ListenOn() string {
	return "0.0.0.0:" + C.WebserverPort
}
