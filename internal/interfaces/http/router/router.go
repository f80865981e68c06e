package router

import (
	"github.com/gin-gonic/gin"
	"github.com/guideshare/backend/internal/infrastructure/auth"
	"github.com/guideshare/backend/internal/interfaces/http/handler"
	"github.com/guideshare/backend/internal/interfaces/http/middleware"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth       *handler.AuthHandler
	Guide      *handler.GuideHandler
	Engagement *handler.EngagementHandler
	Follow     *handler.FollowHandler
	Me         *handler.MeHandler
	Admin      *handler.AdminHandler
	System     *handler.SystemHandler
}

// Router wires the route table onto a gin engine
type Router struct {
	engine     *gin.Engine
	jwtService *auth.JWTService
	handlers   Handlers
}

// NewRouter creates a new Router
func NewRouter(engine *gin.Engine, jwtService *auth.JWTService, handlers Handlers) *Router {
	return &Router{
		engine:     engine,
		jwtService: jwtService,
		handlers:   handlers,
	}
}

// Setup registers all routes. The access policy is ordered: auth
// endpoints are public, guide reads and the template catalog are
// public (with an optional principal for viewer flags), admin routes
// require the admin role, and everything else under /api requires
// authentication.
func (r *Router) Setup() {
	r.engine.GET("/health", r.handlers.System.Health)
	r.engine.GET("/ping", r.handlers.System.Ping)

	// Every /api route sees the principal when a valid token is sent,
	// including public reads
	api := r.engine.Group("/api", middleware.OptionalAuth(r.jwtService))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.handlers.Auth.Register)
		authGroup.POST("/login", r.handlers.Auth.Login)
	}

	// Public reads
	api.GET("/templates", r.handlers.Guide.ListTemplates)
	api.GET("/guides", r.handlers.Guide.List)
	api.GET("/guides/:id", r.handlers.Guide.Get)
	api.GET("/guides/:id/comments", r.handlers.Guide.ListComments)
	api.GET("/guides/:id/checkins", r.handlers.Engagement.ListGuideCheckIns)
	api.GET("/users/:id/following", r.handlers.Follow.IsFollowing)

	// Authenticated writes on guides
	guides := api.Group("/guides", middleware.RequireAuth())
	{
		guides.POST("", r.handlers.Guide.Create)
		guides.PUT("/:id", r.handlers.Guide.Update)
		guides.DELETE("/:id", r.handlers.Guide.Delete)
		guides.POST("/:id/comments", r.handlers.Guide.AddComment)
		guides.POST("/:id/like", r.handlers.Engagement.Like)
		guides.DELETE("/:id/like", r.handlers.Engagement.Unlike)
		guides.POST("/:id/favorite", r.handlers.Engagement.Favorite)
		guides.DELETE("/:id/favorite", r.handlers.Engagement.Unfavorite)
		guides.POST("/:id/checkins", r.handlers.Engagement.CheckIn)
	}

	users := api.Group("/users", middleware.RequireAuth())
	{
		users.POST("/:id/follow", r.handlers.Follow.Follow)
		users.DELETE("/:id/follow", r.handlers.Follow.Unfollow)
	}

	me := api.Group("/me", middleware.RequireAuth())
	{
		me.GET("", r.handlers.Me.Profile)
		me.PATCH("/username", r.handlers.Me.UpdateUsername)
		me.PATCH("/password", r.handlers.Me.UpdatePassword)
		me.GET("/guides", r.handlers.Me.MyGuides)
		me.GET("/favorites", r.handlers.Me.MyFavorites)
		me.GET("/checkins", r.handlers.Me.MyCheckIns)
		me.GET("/following", r.handlers.Me.MyFollowing)
		me.GET("/feed", r.handlers.Me.Feed)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/users", r.handlers.Admin.ListUsers)
		admin.PUT("/users/:id", r.handlers.Admin.UpdateUser)
		admin.PATCH("/users/:id/status", r.handlers.Admin.SetUserStatus)
		admin.POST("/users/:id/reset-password", r.handlers.Admin.ResetUserPassword)
		admin.DELETE("/users/:id", r.handlers.Admin.DeactivateUser)
	}
}
