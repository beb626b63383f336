package config

import (
	"os"
	"strconv"

	"github.com/boardwalk/monopoly-backend/app/engine"
	_ "github.com/joho/godotenv/autoload"
)

// Config is the immutable process configuration, loaded once in main
// and passed into constructors by value.
type Config struct {
	HTTPAddr   string
	SocketAddr string
	CorsOrigin string

	RedisURL string

	DBUser     string
	DBAddr     string
	DBPassword string
	DBName     string

	Game engine.Config
}

// Load reads the configuration from the environment (a .env file is
// honored via godotenv autoload), falling back to the standard rules.
func Load() Config {
	game := engine.DefaultConfig()
	game.StartingMoney = envInt("GAME_STARTING_MONEY", game.StartingMoney)
	game.GoSalary = envInt("GAME_GO_SALARY", game.GoSalary)
	game.JailPosition = envInt("GAME_JAIL_POSITION", game.JailPosition)
	game.JailFee = envInt("GAME_JAIL_FEE", game.JailFee)
	game.MaxDoubles = envInt("GAME_MAX_DOUBLES", game.MaxDoubles)
	game.MaxJailTurns = envInt("GAME_MAX_JAIL_TURNS", game.MaxJailTurns)
	game.AuctionEnabled = envBool("GAME_AUCTION_ENABLED", game.AuctionEnabled)
	game.CollectFreeParking = envBool("GAME_FREE_PARKING_POOL", game.CollectFreeParking)

	return Config{
		HTTPAddr:   env("HTTP_ADDR", ":4101"),
		SocketAddr: env("SOCKET_ADDR", ":8000"),
		CorsOrigin: env("CORS_ORIGIN", "http://localhost:3000"),
		RedisURL:   env("REDIS_URL", ""),
		DBUser:     env("DB_USER", ""),
		DBAddr:     env("DB_ADDR", ""),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", ""),
		Game:       game,
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
