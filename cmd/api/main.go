package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"kuliner/internal/auth"
	"kuliner/internal/catalog"
	"kuliner/internal/db"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/storage"
	"kuliner/internal/identity"
	"kuliner/internal/mailer"
	"kuliner/internal/media"
	"kuliner/internal/moderation"
	"kuliner/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 20
	defaultEnabled := true

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            time.Minute,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	// Create a console encoder with the custom configuration
	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel
	if os.Getenv("ENV") == "development" {
		level = zapcore.DebugLevel
	}

	// Use zapcore.NewCore to write logs to standard output (stdout) with color
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return d, nil
}

func loadConfig() (config, error) {
	maxOpenConns, err := getEnvInt("DB_MAX_OPEN_CONNS", 30)
	if err != nil {
		return config{}, err
	}
	smtpPort, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		return config{}, err
	}
	ttl, err := getEnvDuration("AUTH_TOKEN_TTL", auth.DefaultTokenTTL)
	if err != nil {
		return config{}, err
	}
	rejectUnpublishes, err := getEnvBool("VERIFICATION_REJECT_UNPUBLISHES", true)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		addr:        getEnv("ADDR", ":8080"),
		env:         getEnv("ENV", "development"),
		store:       getEnv("STORE", "postgres"),
		apiURL:      getEnv("EXTERNAL_URL", "localhost:8080"),
		frontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		db: dbConfig{
			addr:         os.Getenv("DB_ADDR"),
			maxOpenConns: maxOpenConns,
			maxIdleTime:  getEnv("DB_MAX_IDLE_TIME", "15m"),
		},
		mail: mailConfig{
			fromEmail: getEnv("MAIL_FROM_EMAIL", "no-reply@kuliner.local"),
			smtp: smtpConfig{
				host:     os.Getenv("SMTP_HOST"),
				port:     smtpPort,
				username: os.Getenv("SMTP_USERNAME"),
				password: os.Getenv("SMTP_PASSWORD"),
			},
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret: os.Getenv("AUTH_TOKEN_SECRET"),
				ttl:    ttl,
				iss:    getEnv("AUTH_TOKEN_ISS", "kuliner"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
		cloudinary:  os.Getenv("CLOUDINARY_URL"),
		slugSalt:    getEnv("SLUG_SALT", "kuliner"),
		verification: verificationConfig{
			rejectUnpublishes: rejectUnpublishes,
		},
		admin: adminConfig{
			name:     getEnv("ADMIN_NAME", "Administrator"),
			email:    os.Getenv("ADMIN_EMAIL"),
			password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	if cfg.auth.token.secret == "" {
		return config{}, errors.New("AUTH_TOKEN_SECRET is required")
	}
	if cfg.store != "postgres" && cfg.store != "memory" {
		return config{}, fmt.Errorf("STORE must be postgres or memory, got %q", cfg.store)
	}
	if cfg.store == "postgres" && cfg.db.addr == "" {
		return config{}, errors.New("DB_ADDR is required when STORE=postgres")
	}
	return cfg, nil
}

// newApplication wires the services over an already opened store.
func newApplication(cfg config, store *storage.Container, logger *zap.SugaredLogger, mail mailer.Client, purger media.Purger) (*application, error) {
	slugs, err := listings.NewSlugger(cfg.slugSalt)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewJWTAuthenticator(cfg.auth.token.secret, cfg.auth.token.iss, cfg.auth.token.iss)
	issuer := auth.NewIssuer(store.Accounts, store.Sessions, tokens, cfg.auth.token.ttl)

	loginURL := cfg.frontendURL + "/login"

	return &application{
		config: cfg,
		store:  store,
		logger: logger,
		issuer: issuer,
		identity: identity.NewService(store, mail, logger, identity.Config{
			RejectUnpublishes: cfg.verification.rejectUnpublishes,
			LoginURL:          loginURL,
		}),
		catalog:     catalog.NewService(store, slugs, purger, logger),
		moderation:  moderation.NewService(store, logger),
		rateLimiter: ratelimiter.NewTokenBucketLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
	}, nil
}

var version = "0.3.0"

//	@title			Kuliner API
//	@description	API for Kuliner, a directory of local food vendors and their dishes.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded, using process environment:", err)
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal(err)
	}

	// Storage
	var store *storage.Container
	switch cfg.store {
	case "memory":
		logger.Warn("using in-memory store, data is lost on restart")
		store = storage.NewMemoryContainer()
	default:
		pool, err := db.New(cfg.db.addr, int32(cfg.db.maxOpenConns), cfg.db.maxIdleTime)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")

		expvar.Publish("database", expvar.Func(func() any {
			s := pool.Stat()
			return map[string]any{
				"total_conns":    s.TotalConns(),
				"idle_conns":     s.IdleConns(),
				"acquired_conns": s.AcquiredConns(),
				"max_conns":      s.MaxConns(),
			}
		}))

		store = storage.NewContainer(pool)
	}

	// Cloudinary
	var purger media.Purger = media.Nop{}
	if cfg.cloudinary != "" {
		cld, err := media.NewCloudinaryPurger(cfg.cloudinary, logger)
		if err != nil {
			logger.Fatal(err)
		}
		purger = cld
	}

	// Mailer
	var mail mailer.Client = mailer.NewLogClient(logger)
	if cfg.mail.smtp.host != "" {
		smtp, err := mailer.NewSMTPClient(cfg.mail.smtp.host, cfg.mail.smtp.port, cfg.mail.smtp.username, cfg.mail.smtp.password, cfg.mail.fromEmail)
		if err != nil {
			logger.Fatal(err)
		}
		mail = smtp
	} else {
		logger.Warn("SMTP_HOST not set, emails are only logged")
	}

	app, err := newApplication(cfg, store, logger, mail, purger)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.admin.email != "" {
		a, created, err := app.identity.BootstrapAdmin(ctx, cfg.admin.name, cfg.admin.email, cfg.admin.password)
		if err != nil {
			logger.Fatal(err)
		}
		if created {
			logger.Infow("admin account created", "account_id", a.ID, "email", a.Email)
		}
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	app.pruneSessionsEvery(ctx, time.Hour)

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
