package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	handlers "github.com/de-tools/report-forge/pkg/handlers/report"
	"github.com/de-tools/report-forge/pkg/server"
	"github.com/de-tools/report-forge/pkg/services/catalog"
	"github.com/de-tools/report-forge/pkg/services/composer"
	"github.com/de-tools/report-forge/pkg/services/config"
	"github.com/de-tools/report-forge/pkg/services/export"
	"github.com/de-tools/report-forge/pkg/services/preview"
	"github.com/de-tools/report-forge/pkg/services/registry"
	"github.com/de-tools/report-forge/pkg/store/duckdb"
	duckdbreport "github.com/de-tools/report-forge/pkg/store/duckdb/report"
	templatefile "github.com/de-tools/report-forge/pkg/store/template/file"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profileName  string
	templatesDir string
	pageCfgPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Report Forge",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.reportforgecfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .reportforgecfg file (default is $HOME/.reportforgecfg)")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", "default",
		"Workspace profile to use")
	rootCmd.Flags().StringVarP(&templatesDir, "templates", "t", "",
		"Directory of template seed files to load at startup")
	rootCmd.Flags().StringVar(&pageCfgPath, "page-config", "",
		"Optional page setup file for PDF exports")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	reg, err := registry.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	profile, err := reg.GetProfile(ctx, profileName)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", profileName, err)
	}
	storePath := profile.StorePath
	if storePath == "" {
		storePath = "report-forge.db"
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: storePath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	repo, err := duckdbreport.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	if templatesDir != "" {
		templates, err := templatefile.LoadDir(templatesDir)
		if err != nil {
			return fmt.Errorf("failed to load template seeds: %w", err)
		}
		for _, t := range templates {
			if err := repo.SaveTemplate(ctx, t); err != nil {
				return fmt.Errorf("failed to seed template %s: %w", t.ID, err)
			}
		}
		logger.Info().Int("count", len(templates)).Msg("template seeds loaded")
	}

	pageSetup := export.DefaultPageSetup()
	if pageCfgPath != "" {
		pageSetup, err = config.LoadPageSetup(pageCfgPath)
		if err != nil {
			return fmt.Errorf("failed to load page setup: %w", err)
		}
	}

	cat := catalog.NewRegistry()
	ids := composer.NewUUIDGenerator()
	engine := composer.NewEngine(ids, cat)
	renderer := preview.NewRenderer(cat)
	exporter := export.NewExporter(cat, pageSetup)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Using profile `%s` with store `%s`", profile.Name, storePath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports: handlers.NewHandler(repo, engine, renderer, exporter, cat, ids),
		},
	})

	return api.Start()
}
