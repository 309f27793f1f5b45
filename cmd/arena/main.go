package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agenthands/arena/internal/arena"
	"github.com/agenthands/arena/internal/config"
	"github.com/agenthands/arena/internal/output"
	"github.com/agenthands/arena/internal/registry"
	"github.com/agenthands/arena/internal/server"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Blind-judged competition between LLM providers",
	Long: "arena generates one hard question, fans it out to every configured\n" +
		"provider concurrently, anonymizes the answers, and has an arbiter model\n" +
		"rank them without knowing which provider wrote which.",
	RunE: runRound,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single arena round and print the ranking",
	RunE:  runRound,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve arena rounds over HTTP",
	RunE:  serve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default config/config.toml, or CONFIG_PATH)")
	rootCmd.PersistentFlags().String("seed", "", "Topic to steer question generation (overrides config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func buildArena(ctx context.Context, cfg *config.Config) (*arena.Arena, *registry.Registry, error) {
	reg, err := registry.Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	a := arena.New(reg.Clients(), reg.Arbiter(), cfg.Timeout(),
		arena.WithShortAnswers(cfg.Arena.ShortAnswers))
	return a, reg, nil
}

func runRound(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := cfg.Arena.Seed
	if s, _ := cmd.Flags().GetString("seed"); s != "" {
		seed = s
	}

	a, _, err := buildArena(ctx, cfg)
	if err != nil {
		return err
	}

	report, err := a.Run(ctx, seed)
	if err != nil && report == nil {
		return err
	}
	if err != nil {
		// Degraded round: report what survived, then surface the judge error.
		log.Printf("Ranking unavailable: %v", err)
	}

	output.Render(os.Stdout, report)
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, reg, err := buildArena(context.Background(), cfg)
	if err != nil {
		return err
	}

	srv := server.NewServer(a, reg.Names(), reg.ArbiterName())
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	return r.Run(":" + cfg.Server.Port)
}
