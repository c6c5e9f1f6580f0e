package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/ktrade-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/ktrade-dashboard-go/internal/application/usecase"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/repository"
	"github.com/diillson/ktrade-dashboard-go/internal/logger"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/diillson/ktrade-dashboard-go/pkg/version"
)

// DefaultSource é o nome do arquivo exportado pelo portal de estatísticas da alfândega.
const DefaultSource = "품목별_수출액__수입액_20260119092646.csv"

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	configRepo       repository.ConfigRepository
	showBanner       bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp() *CLIApp {
	app := &CLIApp{showBanner: true}

	rootCmd := &cobra.Command{
		Use:           "ktrade",
		Short:         "K-Trade 품목별 수출입 통계 Dashboard",
		Long:          "Terminal dashboard for the Korea Customs Service export/import statistics by product category.",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "K-Trade Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("source", "s", DefaultSource, "Trade data location: local path, s3://bucket/key or gs://bucket/object")
	flags.StringSliceP("category", "k", nil, "Top-level categories to analyse (comma-separated, default: first three)")
	flags.Bool("none", false, "Select no category (renders an empty dashboard)")
	flags.StringP("period", "m", "", "Reference period, e.g. 2025.11 (default: latest)")
	flags.BoolP("interactive", "i", false, "Pick categories and period interactively")
	flags.Bool("trend", false, "Display only the monthly export trend of the selected categories")
	flags.Bool("raw", false, "Display the full normalized data table")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("pdf-font", "", "TTF font with Hangul glyphs used in PDF reports")
	flags.String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List the selectable top-level categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliArgs, err := app.prepare(cmd)
			if err != nil {
				return err
			}
			_, err = app.dashboardUseCase.ListCategories(ctx, cliArgs.Source)
			return err
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "periods",
		Short: "List the periods available in the trade data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliArgs, err := app.prepare(cmd)
			if err != nil {
				return err
			}
			_, err = app.dashboardUseCase.ListPeriods(ctx, cliArgs.Source)
			return err
		},
	})

	app.rootCmd = rootCmd
	return app
}

// ExecuteContext runs the CLI application with a cancellable context.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) *types.CLIArgs {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	source, _ := flags.GetString("source")
	categories, _ := flags.GetStringSlice("category")
	none, _ := flags.GetBool("none")
	period, _ := flags.GetString("period")
	interactive, _ := flags.GetBool("interactive")
	trend, _ := flags.GetBool("trend")
	raw, _ := flags.GetBool("raw")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	pdfFont, _ := flags.GetString("pdf-font")
	logLevel, _ := flags.GetString("log-level")

	return &types.CLIArgs{
		ConfigFile:   configFile,
		Source:       source,
		Categories:   categories,
		NoneSelected: none,
		Period:       period,
		Interactive:  interactive,
		Trend:        trend,
		Raw:          raw,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		PDFFont:      pdfFont,
		LogLevel:     logLevel,
	}
}

// prepare lê as flags, mescla o arquivo de configuração e monta o contexto
// com o logger de diagnóstico.
func (app *CLIApp) prepare(cmd *cobra.Command) (context.Context, *types.CLIArgs, error) {
	if app.dashboardUseCase == nil {
		return nil, nil, fmt.Errorf("dashboard use case not configured")
	}

	cliArgs := app.parseArgs(cmd)

	if cliArgs.ConfigFile != "" {
		if app.configRepo == nil {
			return nil, nil, fmt.Errorf("config repository not configured")
		}
		cfg, err := app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config file: %w", err)
		}
		config.MergeArgs(cliArgs, cfg, cmd.Flags().Changed)
	}

	// Set default directory to current working directory if not specified
	if cliArgs.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, nil, err
		}
		cliArgs.Dir = cwd
	} else {
		absDir, err := filepath.Abs(cliArgs.Dir)
		if err != nil {
			return nil, nil, err
		}
		cliArgs.Dir = absDir
	}

	log := logger.New(cliArgs.LogLevel)
	log.Debug().
		Str("source", cliArgs.Source).
		Str("config_file", cliArgs.ConfigFile).
		Str("dir", cliArgs.Dir).
		Msg("arguments resolved")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx, log), cliArgs, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if app.showBanner {
		displayWelcomeBanner()
	}

	ctx, cliArgs, err := app.prepare(cmd)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetConfigRepository define o repositório usado para ler --config-file.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}
