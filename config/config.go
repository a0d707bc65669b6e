package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"bounce/game"
)

const (
	DefaultAddr = ":5000"
	DefaultMode = "release"
)

type Config struct {
	Addr      string
	Mode      string // gin mode: debug, release or test
	WorldFile string
	World     game.World
}

// worldFile mirrors the TOML layout. Pointers keep defaults for absent keys.
type worldFile struct {
	Gravity *float64 `toml:"gravity"`
	FloorY  *float64 `toml:"floor_y"`
	Bounce  *float64 `toml:"bounce"`
	Width   *float64 `toml:"width"`
}

// InitConfig loads .env from the working directory. A missing file is fine.
func InitConfig() error {
	return loadEnvFile(".env")
}

func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	log.Printf("loaded environment variables from %s", path)
	return nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

func envOr(name, def string) string {
	if v, err := GetEnvVariable(name); err == nil {
		return v
	}
	return def
}

// Load builds the config from the environment, then lets flags in args
// override it. Call InitConfig first to pick up a .env file.
func Load(args []string) (*Config, error) {
	flags := flag.NewFlagSet("bounce", flag.ContinueOnError)

	addr := flags.String("addr", envOr("ADDR", DefaultAddr), "listen address")
	mode := flags.String("mode", envOr("GIN_MODE", DefaultMode), "gin mode (debug, release, test)")
	world := flags.String("world", envOr("WORLD_FILE", ""), "optional TOML file overriding court constants")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if *addr == "" {
		return nil, errors.New("listen address must not be empty")
	}
	switch *mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("mode must be debug, release or test, got %q", *mode)
	}

	cfg := &Config{
		Addr:      *addr,
		Mode:      *mode,
		WorldFile: *world,
		World:     game.DefaultWorld(),
	}

	if cfg.WorldFile != "" {
		w, err := LoadWorld(cfg.WorldFile, cfg.World)
		if err != nil {
			return nil, err
		}
		cfg.World = w
	}

	return cfg, nil
}

// LoadWorld reads court constants from a TOML file on top of base.
// Unknown keys are an error so a typo does not silently keep a default.
func LoadWorld(path string, base game.World) (game.World, error) {
	var wf worldFile
	md, err := toml.DecodeFile(path, &wf)
	if err != nil {
		return game.World{}, fmt.Errorf("world file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return game.World{}, fmt.Errorf("world file %s: unknown keys %v", path, undecoded)
	}

	w := base
	if wf.Gravity != nil {
		w.Gravity = *wf.Gravity
	}
	if wf.FloorY != nil {
		w.FloorY = *wf.FloorY
	}
	if wf.Bounce != nil {
		w.Bounce = *wf.Bounce
	}
	if wf.Width != nil {
		w.Width = *wf.Width
	}

	if err := w.Validate(); err != nil {
		return game.World{}, fmt.Errorf("world file %s: %w", path, err)
	}
	return w, nil
}
