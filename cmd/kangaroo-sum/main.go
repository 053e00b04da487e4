package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gordian-engine/kangaroo/internal/ksum"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "kangaroo-sum"
	app.Usage = "print KangarooTwelve (KT128) digests of files, or of standard input"
	app.ArgsUsage = "[files...]"

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "length, n",
			Usage: "output length in bytes",
			Value: 32,
		},
		cli.StringFlag{
			Name:  "customization, c",
			Usage: "customization string",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log per-file diagnostics to stderr",
		},
	}

	app.Action = func(c *cli.Context) error {
		level := slog.LevelWarn
		if c.Bool("verbose") {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		return ksum.Run(log, ksum.Config{
			Files:         c.Args(),
			OutputLength:  c.Int("length"),
			Customization: []byte(c.String("customization")),
			Stdin:         os.Stdin,
		}, os.Stdout)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
