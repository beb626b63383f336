package main

import (
	"math/rand"
	"time"

	"github.com/boardwalk/monopoly-backend/app/controllers"
	"github.com/boardwalk/monopoly-backend/app/engine"
	"github.com/boardwalk/monopoly-backend/app/services"
	"github.com/boardwalk/monopoly-backend/pkg/routes"
	"github.com/boardwalk/monopoly-backend/platform/board"
	"github.com/boardwalk/monopoly-backend/platform/cache"
	"github.com/boardwalk/monopoly-backend/platform/config"
	"github.com/boardwalk/monopoly-backend/platform/database"
	"github.com/boardwalk/monopoly-backend/platform/logging"
	socket "github.com/boardwalk/monopoly-backend/platform/sockets"
	"github.com/boardwalk/monopoly-backend/platform/storage"
	"github.com/go-pg/pg/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	logging.Init()
	cfg := config.Load()

	gameBoard := board.MustLoad()
	eng := engine.New(gameBoard, cfg.Game, rand.NewSource(time.Now().UnixNano()))

	var store storage.GameStorage
	if cfg.RedisURL != "" {
		pool := cache.CreateRedisPool(cfg.RedisURL)
		defer pool.Close()
		store = storage.NewRedisStorage(pool)
	} else {
		logrus.Warn("REDIS_URL not set, using in-memory game storage")
		store = storage.NewMemoryStorage()
	}

	svc := services.NewGameService(eng, store, nil)
	io, err := socket.NewServer(svc)
	if err != nil {
		logrus.WithError(err).Fatal("creating socket.io server")
	}
	svc.SetEmitter(io)

	var db *pg.DB
	if cfg.DBAddr != "" {
		db = database.PostgreSQLConnection(database.Options{
			User:     cfg.DBUser,
			Addr:     cfg.DBAddr,
			Password: cfg.DBPassword,
			Database: cfg.DBName,
		})
		defer db.Close()
	} else {
		logrus.Warn("DB_ADDR not set, lobby listing disabled")
	}

	app := fiber.New()
	app.Use(cors.New())
	routes.GameRoutes(app, &controllers.GameController{Svc: svc, DB: db})

	go func() {
		if err := io.ListenAndServe(cfg.SocketAddr, cfg.CorsOrigin); err != nil {
			logrus.WithError(err).Fatal("socket.io server stopped")
		}
	}()

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("http server stopped")
	}
}
