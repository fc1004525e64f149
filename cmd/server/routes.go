package main

import (
	"github.com/gin-gonic/gin"

	"arena.backend/internal/interfaces/http/handlers"
	"arena.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	gameHandler       *handlers.GameHandler
	teamHandler       *handlers.TeamHandler
	playerHandler     *handlers.PlayerHandler
	tournamentHandler *handlers.TournamentHandler
	matchHandler      *handlers.MatchHandler
	newsHandler       *handlers.NewsHandler
	productHandler    *handlers.ProductHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public + protected)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Game catalogue (public read)
		games := v1.Group("/games")
		{
			games.GET("", d.gameHandler.ListGames)
			games.GET("/:slug", d.gameHandler.GetGame)
		}

		// Teams and leaderboard (public read)
		teams := v1.Group("/teams")
		{
			teams.GET("", d.teamHandler.ListTeams)
			teams.GET("/leaderboard", d.teamHandler.Leaderboard)
			teams.GET("/:slug", d.teamHandler.GetTeam)
		}

		// Player profiles
		players := v1.Group("/players")
		{
			players.GET("/:nickname", d.playerHandler.GetPlayer)
			players.PUT("/me", d.authMiddleware, d.playerHandler.UpdateMyProfile)
		}

		// Tournaments (public read, entry requires auth)
		tournaments := v1.Group("/tournaments")
		{
			tournaments.GET("", d.tournamentHandler.ListUpcoming)
			tournaments.GET("/:slug", d.tournamentHandler.GetTournament)
			tournaments.GET("/:slug/matches", d.matchHandler.ListMatches)
			tournaments.POST("/:id/registrations", d.authMiddleware, d.tournamentHandler.RegisterTeam)
		}
		v1.POST("/registrations/:id/cancel", d.authMiddleware, d.tournamentHandler.CancelRegistration)

		// News (public read)
		news := v1.Group("/news")
		{
			news.GET("", d.newsHandler.ListNews)
			news.GET("/:slug", d.newsHandler.GetArticle)
		}

		// Merch store
		store := v1.Group("/store")
		{
			store.GET("/products", d.productHandler.ListProducts)
			store.GET("/products/:slug", d.productHandler.GetProduct)
			store.POST("/products/:id/purchase", d.authMiddleware, d.productHandler.Purchase)
		}

		// Staff routes (admin or moderator)
		staff := v1.Group("/admin")
		staff.Use(d.authMiddleware, middleware.RequireStaff())
		{
			staff.POST("/tournaments", d.tournamentHandler.CreateTournament)
			staff.POST("/tournaments/:id/open", d.tournamentHandler.OpenRegistration)
			staff.POST("/tournaments/:id/start", d.tournamentHandler.StartTournament)
			staff.POST("/tournaments/:id/finalize", d.tournamentHandler.FinalizeTournament)
			staff.POST("/tournaments/:id/matches", d.matchHandler.ScheduleMatch)
			staff.POST("/registrations/:id/confirm", d.tournamentHandler.ConfirmRegistration)
			staff.POST("/matches/:id/result", d.matchHandler.ReportResult)
			staff.POST("/matches/:id/cancel", d.matchHandler.CancelMatch)
			staff.POST("/news", d.newsHandler.CreateArticle)
		}

		// Admin-only routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.POST("/games", d.gameHandler.CreateGame)
			admin.POST("/teams", d.teamHandler.CreateTeam)
			admin.PUT("/teams/:id", d.teamHandler.UpdateTeam)
			admin.POST("/store/products", d.productHandler.CreateProduct)
		}
	}
}
