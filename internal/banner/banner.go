// Package banner contains the design of the CLI banner.
package banner

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/prefkit/prefsync/internal/config"
)

const bannerWidth = 40

// Banner is a struct that contains the methods to display the application banner
type Banner struct {
	appConfig *config.AppConfig
}

func CLIBanner(appCfg *config.AppConfig) *Banner {
	return &Banner{
		appConfig: appCfg,
	}
}

// Display prints the application banner
func (b *Banner) Display() {
	title := fmt.Sprintf("Welcome to %s", b.appConfig.Name)
	padding := (bannerWidth - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	right := bannerWidth - padding - len(title)
	if right < 0 {
		right = 0
	}

	line := color.New(color.FgHiCyan, color.Bold)
	line.Println("╔════════════════════════════════════════╗")
	line.Println(fmt.Sprintf("║%s%s%s║", strings.Repeat(" ", padding), title, strings.Repeat(" ", right)))
	line.Println("╚════════════════════════════════════════╝")
}
