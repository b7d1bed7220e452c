package api

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pokedex/internal/api/handlers"
	trainerMiddleware "pokedex/internal/api/middleware"
	"pokedex/internal/api/services"
	"pokedex/internal/api/ws"
	"pokedex/internal/config"
)

// Services bundles what the routes serve. It is assembled in main.
type Services struct {
	Catalog   *services.CatalogService
	Favorites *services.FavoriteService
	Battle    *services.BattleService
	Session   *services.SessionService
	Hub       *ws.Hub
}

func SetupRoutes(e *echo.Echo, svc *Services, cfg *config.Config, logger *zap.Logger) {
	e.GET("/health", healthCheck)

	wsHandler := handlers.NewWebSocketHandler(svc.Session, svc.Hub, logger)
	e.GET("/api/ws", wsHandler.HandleConnection)

	e.Validator = NewValidator()

	sessionHandler := handlers.NewSessionHandler(svc.Session)
	e.POST("/api/sessions", sessionHandler.CreateSession)

	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	pokemonGroup := e.Group("/api/pokemon")
	pokemonGroup.GET("", catalogHandler.ListPokemon)
	pokemonGroup.GET("/:name", catalogHandler.GetPokemon)
	pokemonGroup.GET("/:name/evolution", catalogHandler.GetEvolution)

	favoriteHandler := handlers.NewFavoriteHandler(svc.Favorites)
	favoritesGroup := e.Group("/api/favorites")
	favoritesGroup.GET("", favoriteHandler.ListFavorites)
	favoritesGroup.GET("/stats", favoriteHandler.GetStats)
	favoritesGroup.GET("/:id", favoriteHandler.GetFavorite)
	favoritesGroup.POST("", favoriteHandler.AddFavorite)
	favoritesGroup.DELETE("/:id", favoriteHandler.RemoveFavorite)

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTKey),
		ContextKey: trainerMiddleware.TokenContextKey,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	arenaHandler := handlers.NewArenaHandler(svc.Battle)
	arenaGroup := e.Group("/api/arena")
	arenaGroup.Use(echojwt.WithConfig(jwtConfig))
	arenaGroup.Use(trainerMiddleware.ExtractTrainerIDFromJWT())
	arenaGroup.GET("", arenaHandler.GetArena)
	arenaGroup.GET("/opponents", arenaHandler.ListOpponents)
	arenaGroup.POST("/start", arenaHandler.StartBattle)
	arenaGroup.POST("/attack", arenaHandler.Attack)
	arenaGroup.POST("/opponent", arenaHandler.SelectOpponent)
	arenaGroup.POST("/reset", arenaHandler.Reset)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
