package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"bounce/config"
	"bounce/network"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	gin.SetMode(cfg.Mode)
	w := cfg.World
	log.Printf("world: gravity=%v floor=%v bounce=%v width=%v", w.Gravity, w.FloorY, w.Bounce, w.Width)

	router := network.NewRouter(w, gin.Logger())
	srv := network.NewServer(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  bounce [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -addr <addr>     Listen address (env ADDR, default :5000)")
	fmt.Fprintln(os.Stderr, "  -mode <mode>     debug, release or test (env GIN_MODE, default release)")
	fmt.Fprintln(os.Stderr, "  -world <file>    TOML file with gravity, floor_y, bounce, width (env WORLD_FILE)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Variables may also be set in a .env file in the working directory.")
}
