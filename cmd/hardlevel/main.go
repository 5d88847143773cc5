package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/adapters/database"
	"github.com/hardlevel/hardlevel-core/internal/adapters/repository"
	"github.com/hardlevel/hardlevel-core/internal/cli"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

func main() {
	var root cli.CLI
	kctx := kong.Parse(&root,
		kong.Name("hardlevel"),
		kong.Description("Six tasks a day, every day."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	os.Exit(execute(kctx, &root))
}

// execute runs the selected command and returns the exit code.
func execute(kctx *kong.Context, root *cli.CLI) int {
	level := "info"
	if root.Debug {
		level = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:    level,
		Encoding: "console",
		FilePath: filepath.Join(filepath.Dir(root.DB), "logs", "hardlevel.log"),
		Quiet:    !root.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Sync()

	appCtx := &cli.Context{
		Out:    os.Stdout,
		In:     os.Stdin,
		Logger: log,
	}

	if cli.NeedsStore(kctx.Command()) {
		ctx := context.Background()
		db, err := database.OpenSQLite(ctx, root.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer db.Close()

		if err := repository.EnsureSchema(ctx, db); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		repo := repository.NewSQLLogRepository(db)
		appCtx.Checklist = services.NewChecklistService(repo)
		appCtx.Heatmap = services.NewHeatmapService(repo)
	}

	if err := kctx.Run(appCtx); err != nil {
		log.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
