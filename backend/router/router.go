package router

import (
	"net/http"

	"recipe-vault/backend/app/controllers"
	"recipe-vault/backend/app/metrics"
	"recipe-vault/backend/app/middleware"
)

type Controllers struct {
	HTTP    *controllers.HTTPController
	Auth    *controllers.AuthController
	Recipes *controllers.RecipeController
}

func NewRouter(c Controllers, mw *middleware.Auth, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.Handler) {
		mux.Handle(pattern, middleware.WithRoute(pattern, h))
	}

	// public
	handle("GET /ping", http.HandlerFunc(c.HTTP.Ping))
	handle("GET /metrics", metrics.Handler())
	handle("POST /signup", limiter.Limit("/signup", http.HandlerFunc(c.Auth.Signup)))
	handle("POST /login", limiter.Limit("/login", http.HandlerFunc(c.Auth.Login)))

	// session required
	handle("GET /check_session", mw.RequireSession(http.HandlerFunc(c.Auth.CheckSession)))
	handle("DELETE /logout", mw.RequireSession(http.HandlerFunc(c.Auth.Logout)))
	handle("DELETE /account", mw.RequireSession(http.HandlerFunc(c.Auth.DeleteAccount)))
	handle("GET /recipes", mw.RequireSession(http.HandlerFunc(c.Recipes.Index)))
	handle("POST /recipes", mw.RequireSession(http.HandlerFunc(c.Recipes.Create)))

	return middleware.Logging(middleware.Metrics(mux))
}
