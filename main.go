package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"polarmaze/pkg/config"
	"polarmaze/pkg/engine/logging"
	"polarmaze/pkg/engine/terminal"
	"polarmaze/pkg/game/devtools"
	"polarmaze/pkg/game/gameplay"
	"polarmaze/pkg/game/generator"
	"polarmaze/pkg/game/inspect"
	"polarmaze/pkg/game/persist"
	"polarmaze/pkg/game/state"
)

type options struct {
	rings       int
	seed        int64
	algorithm   string
	braid       float64
	removeWalls float64
	monsters    int
	ticks       int
	saveKey     string
	loadKey     string
	dump        bool
	serve       bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(2)
	}

	var opts options
	flag.IntVar(&opts.rings, "rings", cfg.Rings, "number of rings in the maze")
	flag.Int64Var(&opts.seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flag.StringVar(&opts.algorithm, "algorithm", cfg.Algorithm, fmt.Sprintf("generator %v", generator.Names()))
	flag.Float64Var(&opts.braid, "braid", cfg.Braid, "fraction of dead ends turned into loops")
	flag.Float64Var(&opts.removeWalls, "remove-walls", cfg.RemoveWalls, "extra random passages as a fraction of the cell count")
	flag.IntVar(&opts.monsters, "monsters", cfg.Monsters, "number of wandering monsters")
	flag.IntVar(&opts.ticks, "ticks", cfg.Ticks, "ticks to simulate")
	flag.StringVar(&opts.saveKey, "save", "", "save a snapshot under this key after simulating")
	flag.StringVar(&opts.loadKey, "load", "", "load the snapshot with this key instead of building a maze")
	flag.BoolVar(&opts.dump, "dump", false, "write map.txt to the working directory")
	flag.BoolVar(&opts.serve, "serve", false, "serve the inspection API after simulating")
	flag.Parse()

	logger := logging.New("polarmaze", logging.StyleGame, os.Stderr, logging.ParseLevel(cfg.LogLevel))
	gameplay.ConfigureLocale(cfg.LocalesDir, cfg.Language)

	if err := run(context.Background(), cfg, opts, logger); err != nil {
		logger.Error("polarmaze failed", "error", err)
		if errors.Is(err, gameplay.ErrOutOfSpace) {
			fmt.Fprintln(os.Stderr, "the maze is too small for the requested monsters")
		}
		os.Exit(1)
	}
}

// run builds or restores a game, simulates it and handles the requested
// outputs. Deferred cleanup runs before it returns.
func run(ctx context.Context, cfg config.Config, opts options, logger *slog.Logger) error {
	var store persist.Store
	if opts.saveKey != "" || opts.loadKey != "" {
		var closeStore func()
		var err error
		store, closeStore, err = openStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("snapshot store %q unavailable: %w", cfg.SnapshotStore, err)
		}
		defer closeStore()
	}

	var g *state.Game
	if opts.loadKey != "" {
		snap, err := store.Load(ctx, opts.loadKey)
		if err != nil {
			return fmt.Errorf("load snapshot %q: %w", opts.loadKey, err)
		}
		g, err = state.Load(snap, logger)
		if err != nil {
			return fmt.Errorf("restore snapshot %q: %w", opts.loadKey, err)
		}
		logger.Info("snapshot restored", "key", opts.loadKey, "tick", g.Ticks)
	} else {
		r := state.Recipe{
			Rings:        opts.rings,
			Seed:         opts.seed,
			Algorithm:    opts.algorithm,
			Braid:        opts.braid,
			RemoveWalls:  opts.removeWalls,
			Rooms:        cfg.Rooms,
			Doors:        cfg.Doors,
			Keys:         cfg.Keys,
			Monsters:     opts.monsters,
			PlayerSpeed:  cfg.PlayerSpeed,
			MonsterSpeed: cfg.MonsterSpeed,
			SpawnMin:     3,
			SpawnMax:     opts.rings * 2,
		}
		var err error
		g, err = state.Build(r, logger)
		if err != nil {
			return fmt.Errorf("build maze: %w", err)
		}
	}

	simulate(g, opts.ticks, logger)

	fmt.Print(devtools.Render(g, terminal.IsTerminal(os.Stdout), terminal.GetWidth()))
	fmt.Println()
	for _, m := range g.Messages {
		fmt.Println(m)
	}

	if opts.dump {
		path, err := devtools.DumpMapToFile(g, ".")
		if err != nil {
			logger.Error("dump map", "error", err)
		} else {
			logger.Info("map dumped", "path", path)
		}
	}

	if opts.saveKey != "" {
		if err := store.Save(ctx, opts.saveKey, g.Snapshot()); err != nil {
			return fmt.Errorf("save snapshot %q: %w", opts.saveKey, err)
		}
		logger.Info("snapshot saved", "key", opts.saveKey, "store", cfg.SnapshotStore)
	}

	if opts.serve {
		router := inspect.NewRouter(inspect.Config{
			Addr:        cfg.InspectAddr,
			BaseURL:     "/api",
			Mode:        cfg.GinMode,
			Controllers: []inspect.Controller{inspect.NewMazeController(g)},
		})
		logger.Info("inspection API listening", "addr", cfg.InspectAddr)
		if err := router.Run(); err != nil {
			return fmt.Errorf("inspection API stopped: %w", err)
		}
	}
	return nil
}

// simulate walks the player toward the cell farthest from where it
// stands while the monsters wander.
func simulate(g *state.Game, ticks int, logger *slog.Logger) {
	if g.Player == nil {
		for i := 0; i < ticks; i++ {
			g.Tick()
		}
		return
	}

	goal, dist := g.Grid.Distances(g.Player.Current()).Max()
	follower := gameplay.NewFollower(g.Player, goal)
	logger.Info("player heading out", "goal", goal.String(), "distance", dist)

	for i := 0; i < ticks; i++ {
		follower.Update()
		g.Tick()
		if follower.Arrived() {
			logger.Info("player reached goal", "tick", g.Ticks)
			break
		}
	}
	logger.Info("simulation finished", "ticks", g.Ticks, "caught", g.Caught, "doors", len(g.Grid.Doors()))
}

// openStore connects to the snapshot backend named in the configuration.
func openStore(ctx context.Context, cfg config.Config) (persist.Store, func(), error) {
	switch cfg.SnapshotStore {
	case "file":
		return persist.NewFileStore(cfg.SnapshotPath), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return persist.NewRedisStore(client, "polarmaze:snapshot:", cfg.RedisTTLSeconds), func() { _ = client.Close() }, nil
	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, mongoopts.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("mongo ping: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return persist.NewMongoStore(client, cfg.MongoDB, cfg.MongoCollection), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot store %q", cfg.SnapshotStore)
	}
}
