// Package config loads runtime settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Rings        int     // Number of rings in the maze
	Seed         int64   // Random seed, 0 for time based
	Algorithm    string  // Generator name
	Braid        float64 // Fraction of dead ends turned into loops
	RemoveWalls  float64 // Extra random passages as a fraction of the cell count
	Rooms        bool    // Carve the default rooms
	Doors        int     // Number of locked doors
	Keys         int     // Keys the player starts with
	Monsters     int     // Wandering monsters
	PlayerSpeed  int     // Ticks per player move
	MonsterSpeed int     // Ticks per monster move
	Ticks        int     // Ticks to simulate

	LogLevel   string // debug, info, warn or error
	Language   string // Message catalog language
	LocalesDir string // Directory holding the message catalogs

	InspectAddr string // Listen address for the inspection API
	GinMode     string // Mode for the Gin framework (e.g., release, debug, test)

	SnapshotStore   string // file, redis or mongo
	SnapshotPath    string // Directory for the file store
	RedisAddr       string // Redis address for the redis store
	RedisTTLSeconds int    // Expiry of saved snapshots in redis, 0 keeps them
	MongoURI        string // Connection string for the mongo store
	MongoDB         string // Database name for the mongo store
	MongoCollection string // Collection name for the mongo store
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var errs []error
	c := Config{
		Rings:        getInt("MAZE_RINGS", 8, &errs),
		Seed:         int64(getInt("MAZE_SEED", 0, &errs)),
		Algorithm:    getEnvWithDefault("MAZE_ALGORITHM", "growing-tree-random"),
		Braid:        getFloat("MAZE_BRAID", 1.0, &errs),
		RemoveWalls:  getFloat("MAZE_REMOVE_WALLS", 0, &errs),
		Rooms:        getBool("MAZE_ROOMS", true, &errs),
		Doors:        getInt("MAZE_DOORS", 2, &errs),
		Keys:         getInt("MAZE_KEYS", 1, &errs),
		Monsters:     getInt("MAZE_MONSTERS", 3, &errs),
		PlayerSpeed:  getInt("MAZE_PLAYER_SPEED", 8, &errs),
		MonsterSpeed: getInt("MAZE_MONSTER_SPEED", 12, &errs),
		Ticks:        getInt("MAZE_TICKS", 240, &errs),

		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
		Language:   getEnvWithDefault("LANGUAGE", "en"),
		LocalesDir: getEnvWithDefault("LOCALES_DIR", "locales"),

		InspectAddr: getEnvWithDefault("INSPECT_ADDR", "127.0.0.1:8088"),
		GinMode:     getEnvWithDefault("GIN_MODE", "release"),

		SnapshotStore:   getEnvWithDefault("SNAPSHOT_STORE", "file"),
		SnapshotPath:    getEnvWithDefault("SNAPSHOT_PATH", "saves"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisTTLSeconds: getInt("REDIS_TTL_SECONDS", 0, &errs),
		MongoURI:        getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnvWithDefault("MONGO_DB", "polarmaze"),
		MongoCollection: getEnvWithDefault("MONGO_COLLECTION", "snapshots"),
	}
	return c, errors.Join(errs...)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, value))
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64, errs *[]error) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidValue, key, value))
		return defaultValue
	}
	return f
}

func getBool(key string, defaultValue bool, errs *[]error) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, key, value))
		return defaultValue
	}
	return b
}
