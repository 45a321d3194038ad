// Package server Fritter
//
// The Fritter service provides access to freets, engagement, profiles and reflections.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/fritter-net/fritter/internal/api"
	mm "github.com/fritter-net/fritter/internal/middleware"
	"github.com/fritter-net/fritter/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 4096

const statsCacheTTL = 10 * time.Minute

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		api.RequestIDMiddleware,
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
		api.AuthMiddleware,
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/posts", srv.listPosts)
		r.Post("/posts", srv.createPost)
		r.Get("/posts/{postID}", srv.getPost)
		r.Put("/posts/{postID}", srv.updatePost)
		r.Delete("/posts/{postID}", srv.deletePost)

		r.Put("/engagement/like/{postID}", srv.like)
		r.Put("/engagement/dislike/{postID}", srv.dislike)
		r.Get("/engagement", srv.listEngagements)
		r.Get("/engagement/{postID}", srv.getEngagement)

		r.Get("/profiles", srv.listProfiles)
		r.Post("/profiles", srv.createProfile)
		r.Get("/profiles/{name}", srv.getProfile)
		r.Delete("/profiles/{name}", srv.deleteProfile)
		r.Put("/profiles/{name}/follow", srv.follow)
		r.Put("/profiles/{name}/unfollow", srv.unfollow)

		r.Get("/reflections", srv.listReflections)
		r.Post("/reflections", srv.createReflection)
		r.Put("/reflections/{reflectionID}", srv.updateReflection)
		r.Delete("/reflections/{reflectionID}", srv.deleteReflection)

		r.Delete("/users/me", srv.deleteUserContent)

		r.Get("/stats", mm.Cached(statsCacheTTL, srv.getStats))
	})
}
