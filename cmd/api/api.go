package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kuliner/docs" //this is required to generate swagger docs
	"kuliner/internal/auth"
	"kuliner/internal/catalog"
	"kuliner/internal/domain/storage"
	"kuliner/internal/identity"
	"kuliner/internal/moderation"
	"kuliner/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	logger      *zap.SugaredLogger
	issuer      *auth.Issuer
	identity    *identity.Service
	catalog     *catalog.Service
	moderation  *moderation.Service
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr         string
	db           dbConfig
	store        string
	env          string
	apiURL       string
	frontendURL  string
	mail         mailConfig
	auth         authConfig
	rateLimiter  ratelimiter.Config
	cloudinary   string
	slugSalt     string
	verification verificationConfig
	admin        adminConfig
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	ttl    time.Duration
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
}

type verificationConfig struct {
	rejectUnpublishes bool
}

type adminConfig struct {
	name     string
	email    string
	password string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/v1/swagger/doc.json", app.config.apiURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Use(app.RateLimiterMiddleware)
			r.Post("/visitor", app.registerVisitorHandler)
			r.Post("/partner", app.registerPartnerHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
		})

		r.Route("/users", func(r chi.Router) {
			// logout only needs a live token, so pending partners can end their session
			r.Post("/logout", app.logoutHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Get("/me", app.getCurrentUserHandler)
				r.Put("/me", app.updateCurrentUserHandler)
				r.Put("/{userID}", app.updateUserHandler)
			})
		})

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", app.listPublicListingsHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Get("/mine", app.listOwnListingsHandler)
				r.Post("/", app.createListingHandler)
				r.Put("/{listingID}", app.updateListingHandler)
				r.Patch("/{listingID}/status", app.setListingStatusHandler)
				r.Delete("/{listingID}", app.deleteListingHandler)
			})

			r.Get("/{listingID}/reviews", app.listApprovedReviewsHandler)
			// {listingID} here also accepts a slug
			r.With(app.OptionalAuthMiddleware).Get("/{listingID}", app.getListingHandler)
		})

		r.With(app.AuthTokenMiddleware).Post("/reviews", app.submitReviewHandler)

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/stats", app.adminStatsHandler)
			r.Get("/partners/pending", app.adminListPendingPartnersHandler)
			r.Post("/partners/{userID}/verification", app.adminVerifyPartnerHandler)
			r.Get("/listings", app.adminListListingsHandler)
			r.Get("/reviews", app.adminListReviewsHandler)
			r.Patch("/reviews/{reviewID}/status", app.adminSetReviewStatusHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env, "store", app.config.store)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
