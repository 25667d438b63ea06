package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/nutritrack-backend/api/controllers"
	"github.com/angelmondragon/nutritrack-backend/api/middleware"
	"github.com/angelmondragon/nutritrack-backend/api/responses"
	activitysvc "github.com/angelmondragon/nutritrack-backend/internal/activities"
	authsvc "github.com/angelmondragon/nutritrack-backend/internal/auth"
	foodsvc "github.com/angelmondragon/nutritrack-backend/internal/foods"
	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	profilesvc "github.com/angelmondragon/nutritrack-backend/internal/profiles"
	recipesvc "github.com/angelmondragon/nutritrack-backend/internal/recipes"
	usersvc "github.com/angelmondragon/nutritrack-backend/internal/users"
	"github.com/angelmondragon/nutritrack-backend/pkg/auth/session"
	"github.com/angelmondragon/nutritrack-backend/pkg/config"
	"github.com/angelmondragon/nutritrack-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"github.com/angelmondragon/nutritrack-backend/pkg/logger"
	"github.com/angelmondragon/nutritrack-backend/pkg/metrics"
	"github.com/angelmondragon/nutritrack-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on. Redis-backed
// pieces (session verifier, rate limiting) may be nil and degrade gracefully.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	Metrics         *metrics.HTTP
	SessionVerifier session.AccessSessionChecker

	Users      usersvc.Service
	Auth       authsvc.Service
	Profiles   profilesvc.Service
	Recipes    recipesvc.Service
	Foods      foodsvc.Service
	Activities activitysvc.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, p.Metrics),
		middleware.CORS(),
	)
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeMethodNotAllowed, `method "`+req.Method+`" not allowed`))
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "resource not found"))
	})

	tokenPolicy := middleware.NewAuthRateLimitPolicy(
		"token",
		cfg.AuthRateLimit.TokenWindow,
		cfg.AuthRateLimit.TokenIPLimit,
		cfg.AuthRateLimit.TokenEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	// assign through the interfaces only when the client exists, so nil
	// Redis genuinely disables the dependent middleware
	var limiter middleware.RateLimiterStore
	var redisPinger db.Pinger
	if p.Redis != nil {
		limiter = p.Redis
		redisPinger = p.Redis
	}

	authn := middleware.Auth(cfg.JWT, p.SessionVerifier, logg)
	permit := func(action permissions.Action) func(http.Handler) http.Handler {
		return middleware.Permit(action, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, redisPinger))
	})

	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())
	}

	r.Route("/user", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, limiter, logg)).Post("/create", controllers.UserCreate(p.Users, logg))
		r.With(middleware.AuthRateLimit(tokenPolicy, limiter, logg)).Post("/token", controllers.UserToken(p.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Post("/logout", controllers.UserLogout(p.Auth, logg))
			r.Route("/me", func(r chi.Router) {
				r.Get("/", controllers.UserMe(p.Users, logg))
				r.Put("/", controllers.UserReplaceMe(p.Users, logg))
				r.Patch("/", controllers.UserUpdateMe(p.Users, logg))
				r.Delete("/", controllers.UserDeleteMe(p.Users, p.Auth, logg))
				r.Route("/profile", func(r chi.Router) {
					r.Get("/", controllers.ProfileFetch(p.Profiles, logg))
					r.Put("/", controllers.ProfileUpdate(p.Profiles, logg))
				})
			})
		})
	})

	r.Route("/recipe/recipes", func(r chi.Router) {
		r.Use(authn)
		r.With(permit(permissions.ActionList)).Get("/", controllers.RecipeList(p.Recipes, logg))
		r.With(permit(permissions.ActionCreate)).Post("/", controllers.RecipeCreate(p.Recipes, logg))
		r.Route("/{id}", func(r chi.Router) {
			r.With(permit(permissions.ActionRetrieve)).Get("/", controllers.RecipeDetail(p.Recipes, logg))
			r.With(permit(permissions.ActionUpdate)).Put("/", controllers.RecipeReplace(p.Recipes, logg))
			r.With(permit(permissions.ActionPartialUpdate)).Patch("/", controllers.RecipeUpdate(p.Recipes, logg))
			r.With(permit(permissions.ActionDestroy)).Delete("/", controllers.RecipeDelete(p.Recipes, logg))
			// staff is checked inside the service, after the file validates
			r.Post("/upload-image", controllers.RecipeUploadImage(p.Recipes, cfg.Uploads.MaxUploadMB, logg))
		})
	})

	r.Route("/food/foods", func(r chi.Router) {
		r.Use(authn)
		r.With(permit(permissions.ActionList)).Get("/", controllers.FoodList(p.Foods, logg))
		r.With(permit(permissions.ActionCreate)).Post("/", controllers.FoodCreate(p.Foods, logg))
		r.Route("/{id}", func(r chi.Router) {
			r.With(permit(permissions.ActionRetrieve)).Get("/", controllers.FoodDetail(p.Foods, logg))
			r.With(permit(permissions.ActionUpdate)).Put("/", controllers.FoodReplace(p.Foods, logg))
			r.With(permit(permissions.ActionPartialUpdate)).Patch("/", controllers.FoodUpdate(p.Foods, logg))
			r.With(permit(permissions.ActionDestroy)).Delete("/", controllers.FoodDelete(p.Foods, logg))
		})
	})

	r.Route("/activity/activities", func(r chi.Router) {
		r.Use(authn)
		r.With(permit(permissions.ActionList)).Get("/", controllers.ActivityList(p.Activities, logg))
		r.With(permit(permissions.ActionCreate)).Post("/", controllers.ActivityCreate(p.Activities, logg))
		r.Route("/{id}", func(r chi.Router) {
			r.With(permit(permissions.ActionRetrieve)).Get("/", controllers.ActivityDetail(p.Activities, logg))
			r.With(permit(permissions.ActionUpdate)).Put("/", controllers.ActivityReplace(p.Activities, logg))
			r.With(permit(permissions.ActionPartialUpdate)).Patch("/", controllers.ActivityUpdate(p.Activities, logg))
			r.With(permit(permissions.ActionDestroy)).Delete("/", controllers.ActivityDelete(p.Activities, logg))
		})
	})

	return r
}
