package bootstrap

import (
	"context"
	"fmt"

	"github.com/locvowork/sheetlayout/internal/config"
	"github.com/locvowork/sheetlayout/internal/logger"
	"github.com/locvowork/sheetlayout/pkg/sheetlayout"
)

// App holds the wired process state: environment configuration, the parsed
// layout file and the frozen configuration table shared by all resolvers.
type App struct {
	Env    config.EnvConfig
	Layout *config.LayoutFile
	Table  *sheetlayout.Table
}

func NewApp() *App {
	return &App{}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	a.Env = config.DefaultEnvConfig

	logger.InitLogging(a.Env.LOG_FILE_PATH)
	logger.InfoLog(ctx, "environment %q, layout config %s", a.Env.APP_ENV, a.Env.LAYOUT_CONFIG_PATH)

	layout, err := config.LoadLayoutFile(a.Env.LAYOUT_CONFIG_PATH)
	if err != nil {
		return err
	}
	a.Layout = layout

	// Frozen once here; every resolver shares this table read-only.
	a.Table = layout.Table()
	logger.InfoLog(ctx, "layout table frozen with %d sheet(s)", len(a.Table.Sheets()))

	return nil
}

// LayoutFor builds a resolver for a logical sheet name, translated to the
// concrete identifier of the active environment.
func (a *App) LayoutFor(logical string) *sheetlayout.Layout {
	sheetID := a.Layout.SheetID(a.Env.APP_ENV, logical)
	return sheetlayout.NewLayout(sheetID, a.Table)
}
