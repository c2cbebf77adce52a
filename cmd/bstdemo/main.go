package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "bstdemo",
		Usage:   "build, unbalance and rebalance a binary search tree of random keys",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Usage:   "number of random keys to build the tree from",
				Value:   10,
				EnvVars: []string{"BST_SIZE"},
			},
			&cli.IntFlag{
				Name:    "max",
				Usage:   "random keys are in [0, max)",
				Value:   100,
				EnvVars: []string{"BST_MAX"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for the random keys, 0 picks one from the clock",
				EnvVars: []string{"BST_SEED"},
			},
			&cli.IntSliceFlag{
				Name:    "extra",
				Usage:   "keys inserted after the first print to unbalance the tree",
				Value:   cli.NewIntSlice(100, 500, 200),
				EnvVars: []string{"BST_EXTRA"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Action: func(cctx *cli.Context) error {
			logger := configLogger(cctx, cctx.App.ErrWriter)
			cfg := demoConfig{
				size:  cctx.Int("size"),
				max:   cctx.Int("max"),
				seed:  cctx.Int64("seed"),
				extra: cctx.IntSlice("extra"),
			}
			return demo(cctx.App.Writer, logger, cfg)
		},
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
