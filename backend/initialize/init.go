package initialize

import (
	"context"
	"fmt"
	"net/http"

	"recipe-vault/backend/app/controllers"
	"recipe-vault/backend/app/db"
	jwtutil "recipe-vault/backend/app/jwt"
	"recipe-vault/backend/app/middleware"
	"recipe-vault/backend/app/repo"
	"recipe-vault/backend/app/services"
	"recipe-vault/backend/app/session"
	"recipe-vault/backend/config"
	"recipe-vault/backend/global"
	"recipe-vault/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Router   http.Handler
	Sessions *session.Manager
	Users    *services.UserService
	Recipes  *services.RecipeService
}

// Build wires storage, sessions, services and HTTP handlers from cfg.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	global.Config = *cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	app := &App{Cfg: *cfg, DB: gdb}

	var store session.Store
	switch cfg.Session.Store {
	case "", "memory":
		store = session.NewMemoryStore()
	case "redis":
		app.Redis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := app.Redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = session.NewRedisStore(app.Redis)
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.Session.Store)
	}
	global.Logger.Info().Str("db", cfg.DB.Driver).Str("sessions", cfg.Session.Store).Msg("storage ready")

	// Services
	userRepo := repo.NewUserRepository(gdb)
	recipeRepo := repo.NewRecipeRepository(gdb)
	app.Users = services.NewUserService(gdb, userRepo)
	app.Recipes = services.NewRecipeService(gdb, userRepo, recipeRepo)
	if cfg.Seed.Username != "" {
		if err := app.Users.EnsureUser(ctx, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			// non-critical
			global.Logger.Warn().Err(err).Str("username", cfg.Seed.Username).Msg("seed user")
		}
	}

	// Sessions
	if cfg.Session.Secret == config.DefaultSessionSecret {
		global.Logger.Warn().Msg("session.secret is not set, signing cookies with the development secret")
	}
	signer := &jwtutil.Signer{Secret: []byte(cfg.Session.Secret), Issuer: cfg.Session.Issuer, TTL: cfg.Session.TTL}
	app.Sessions = session.NewManager(store, signer, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)

	// Router
	app.Router = NewHandler(app.Users, app.Recipes, app.Sessions, middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	return app, nil
}

func NewHandler(users *services.UserService, recipes *services.RecipeService, sessions *session.Manager, limiter *middleware.RateLimiter) http.Handler {
	return router.NewRouter(router.Controllers{
		HTTP:    controllers.NewHTTPController(),
		Auth:    controllers.NewAuthController(users, sessions),
		Recipes: controllers.NewRecipeController(recipes),
	}, &middleware.Auth{Sessions: sessions}, limiter)
}

func (a *App) Close() error {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
