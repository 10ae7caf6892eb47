package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"maka/internal/config"
	"maka/internal/domain"
	"maka/internal/services"
	"maka/internal/state"
	"maka/internal/ui"
)

func Run(args []string) error {
	base := config.DefaultConfig()
	if loaded, err := config.LoadConfig(); err == nil {
		base = loaded
	}

	app := &cli.App{
		Name:  "maka",
		Usage: "interactive disk usage scanner",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Value: base.Path, Usage: "root path to scan"},
			&cli.BoolFlag{Name: "show-hidden", Value: base.ShowHidden, Usage: "include dotfile entries"},
			&cli.IntFlag{Name: "max-entries", Value: base.MaxEntries, Usage: "entry cap per directory (0 = default)"},
			&cli.IntFlag{Name: "workers", Value: base.Workers, Usage: "concurrent subtree scans (0 = auto)"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "entry names to skip (repeatable)"},
		},
		Action: func(ctx *cli.Context) error {
			return browse(applyFlags(base, ctx))
		},
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "scan a path and print a size report",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "depth", Aliases: []string{"d"}, Value: 1, Usage: "listing depth"},
					&cli.BoolFlag{Name: "json", Usage: "emit the view as JSON"},
				},
				Action: func(ctx *cli.Context) error {
					return scan(applyFlags(base, ctx), ctx)
				},
			},
			{
				Name:  "roots",
				Usage: "list system storage volumes",
				Action: func(ctx *cli.Context) error {
					return roots()
				},
			},
		},
	}

	return app.Run(args)
}

func applyFlags(base config.Config, ctx *cli.Context) config.Config {
	cfg := base
	if ctx.IsSet("path") || cfg.Path == "" {
		cfg.Path = ctx.String("path")
	}
	if ctx.IsSet("show-hidden") {
		cfg.ShowHidden = ctx.Bool("show-hidden")
	}
	if ctx.IsSet("max-entries") {
		cfg.MaxEntries = ctx.Int("max-entries")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if excludes := ctx.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Exclusions = excludes
	}
	return cfg
}

func newScanner(cfg config.Config) *services.DiskScanner {
	opts := services.WalkOptions{
		MaxEntriesPerDir: cfg.MaxEntries,
		SkipHidden:       !cfg.ShowHidden,
		MaxDepth:         cfg.MaxDepth,
		Workers:          cfg.Workers,
	}
	if len(cfg.Exclusions) > 0 {
		opts.Exclusions = services.ExclusionSet(cfg.Exclusions)
	}
	return services.NewDiskScanner(services.NewHostPlatform(), opts)
}

func browse(cfg config.Config) error {
	scanner := newScanner(cfg)
	if !scanner.CanRead(cfg.Path) {
		return fmt.Errorf("cannot read %s", cfg.Path)
	}

	session := state.NewState(cfg)
	model := ui.NewModel(session, scanner, services.NewFSRemover(), scanner)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	if err := config.SaveConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "maka: config save:", err)
	}
	return nil
}

func scan(cfg config.Config, cliCtx *cli.Context) error {
	scanner := newScanner(cfg)
	ctx := context.Background()

	start := time.Now()
	result, err := scanner.BuildCache(ctx, services.BuildRequest{RootPath: cfg.Path})
	if err != nil {
		return err
	}

	node, err := scanner.View(ctx, services.ViewRequest{
		Path:     result.RootPath,
		MaxDepth: int(cliCtx.Uint("depth")),
	})
	if err != nil {
		return err
	}

	if cliCtx.Bool("json") {
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printTree(node, 0)
	}

	permission, notFound := scanner.ErrorStats()
	fmt.Printf("\nscanned in %s", time.Since(start).Round(time.Millisecond))
	if permission > 0 || notFound > 0 {
		fmt.Printf(" (skipped: %d permission denied, %d not found)", permission, notFound)
	}
	fmt.Println()
	return nil
}

func printTree(node *domain.Node, indent int) {
	name := node.Name
	if node.IsDir {
		name += "/"
	}
	fmt.Printf("%s%10s  %s", strings.Repeat("  ", indent), humanize.Bytes(uint64(node.Size)), name)
	if node.IsDir && len(node.Children) == 0 && node.ChildCount > 0 {
		fmt.Printf("  (%d items)", node.ChildCount)
	}
	fmt.Println()
	for _, child := range node.Children {
		printTree(child, indent+1)
	}
}

func roots() error {
	platform := services.NewHostPlatform()
	mounts, err := platform.Roots()
	if err != nil {
		return err
	}
	for _, mount := range mounts {
		fmt.Println(mount)
	}
	return nil
}
