package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/ktrade-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
   /$$   /$$         /$$$$$$$$                       /$$          
  | $$  /$$/        |__  $$__/                      | $$          
  | $$ /$$/            | $$  /$$$$$$  /$$$$$$   /$$$$$$$  /$$$$$$ 
  | $$$$$/   /$$$$$$   | $$ /$$__  $$|____  $$ /$$__  $$ /$$__  $$
  | $$  $$  |______/   | $$| $$  \__/ /$$$$$$$| $$  | $$| $$$$$$$$
  | $$\  $$            | $$| $$      /$$__  $$| $$  | $$| $$_____/
  | $$ \  $$           | $$| $$     |  $$$$$$$|  $$$$$$$|  $$$$$$$
  |__/  \__/           |__/|__/      \_______/ \_______/ \_______/
`
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))
	fmt.Println(blue(fmt.Sprintf("K-Trade 품목별 수출입 통계 Dashboard (v%s)", version.FormatVersion())))
}
