package common

import (
	"flag"
	"time"
)

var Version = "v1.0.0"
var StartTime = time.Now().Unix()

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// MaxImageSize caps a single uploaded image at 5 MiB.
const MaxImageSize = 5 * 1024 * 1024

const RequestIdKey = "X-Request-Id"

var (
	Port          = flag.Int("port", 3000, "the listening port")
	ConfigPath    = flag.String("config", "config.ini", "path to the configuration file")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
)

var (
	Mode       = ModeDevelopment
	CertFile   = "certs/server.crt"
	KeyFile    = "certs/server.key"
	DataFile   = "data/news.json"
	UploadPath = "uploads"
	WebPath    = "web"
	EnableGzip = true

	// AllowedOrigins is the CORS allow-list used in production mode.
	// Development mode accepts any origin.
	AllowedOrigins = []string{"https://localhost:3000"}
)
