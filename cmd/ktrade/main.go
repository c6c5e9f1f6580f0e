package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/ktrade-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/ktrade-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/ktrade-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/ktrade-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/ktrade-dashboard-go/internal/application/loader"
	"github.com/diillson/ktrade-dashboard-go/internal/application/usecase"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/diillson/ktrade-dashboard-go/pkg/console"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp()

	// Inicializa os repositórios; KTRADE_AWS_PROFILE seleciona o perfil para fontes s3://
	sourceRepo := source.NewSourceRepository(source.WithAWSProfile(os.Getenv("KTRADE_AWS_PROFILE")))
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// A tabela é carregada no máximo uma vez por processo
	tableLoader := loader.NewCached(loader.NewLoader(sourceRepo))

	dashboardUseCase := usecase.NewDashboardUseCase(
		tableLoader,
		exportRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)
	app.SetConfigRepository(configRepo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.ExecuteContext(ctx); err != nil {
		stop()
		// Erros já exibidos pelo caso de uso só definem o código de saída
		if !types.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
