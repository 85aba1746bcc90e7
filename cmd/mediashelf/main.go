// Copyright 2025 Mediashelf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	mediashelf "github.com/mediashelf/mediashelf"
	"github.com/mediashelf/mediashelf/bot"
	"github.com/mediashelf/mediashelf/config"
	"github.com/mediashelf/mediashelf/core"
	"github.com/mediashelf/mediashelf/render"
	"github.com/mediashelf/mediashelf/transport/gateway"
)

func main() {
	app := &cli.App{
		Name:  "mediashelf",
		Usage: "Channel media monitor: indexes captioned videos and PDFs, serves summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Connect to the gateway and run the monitor and command front end",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env-file",
						Usage: "Path to a .env file to seed the environment from",
						Value: ".env",
					},
				},
			},
			{
				Name:   "summary",
				Usage:  "Print the full course summary from a local database",
				Action: summaryCommand,
				Flags:  offlineFlags(),
			},
			{
				Name:   "videos",
				Usage:  "Print the flat video listing from a local database",
				Action: listingCommand(core.MediaKindVideo),
				Flags:  offlineFlags(),
			},
			{
				Name:   "pdfs",
				Usage:  "Print the flat PDF listing from a local database",
				Action: listingCommand(core.MediaKindPDF),
				Flags:  offlineFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func offlineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "channel",
			Usage: "Channel name used to build origin message links",
			Value: "channel",
		},
	}
}

func serveCommand(c *cli.Context) error {
	// A missing .env file is fine; the environment may already be populated.
	if err := godotenv.Load(c.String("env-file")); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The --log-level flag wins; otherwise the environment decides.
	if !c.IsSet("log-level") {
		if err := applyLogLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var archiveOpts []mediashelf.ArchiveOption
	if cfg.InMemory {
		archiveOpts = append(archiveOpts, mediashelf.WithInMemory())
	}
	archive, err := mediashelf.OpenArchive(cfg.DBPath, archiveOpts...)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	gw, err := gateway.New(cfg.GatewayURL, cfg.GatewayToken, cfg.Channel, gateway.Options{}, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create gateway: %w", err)
	}

	pipeline, err := archive.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	renderer, err := archive.NewRenderer(gw)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	front, err := bot.NewBot(renderer, gw, cfg.AdminID)
	if err != nil {
		return fmt.Errorf("failed to create command front end: %w", err)
	}

	slog.Info("starting mediashelf", "channel", cfg.Channel, "db", cfg.DBPath)

	// The gateway owns the message and command channels and closes them
	// when its reconnect loop exits. The consumers then drain and return.
	errs := make(chan error, 3)
	go func() {
		errs <- gw.Run(ctx)
	}()
	go func() {
		errs <- pipeline.Run(ctx, gw.Messages())
	}()
	go func() {
		errs <- front.Run(ctx, gw.Commands())
	}()

	for i := 0; i < 3; i++ {
		if err := <-errs; err != nil && ctx.Err() == nil {
			stop()
			return err
		}
	}

	slog.Info("mediashelf stopped")
	return nil
}

func summaryCommand(c *cli.Context) error {
	archive, renderer, err := openOffline(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	text, err := renderer.FullSummary(c.Context)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func listingCommand(kind core.MediaKind) cli.ActionFunc {
	return func(c *cli.Context) error {
		archive, renderer, err := openOffline(c)
		if err != nil {
			return err
		}
		defer archive.Close()

		text, err := renderer.KindListing(c.Context, kind)
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	}
}

func openOffline(c *cli.Context) (*mediashelf.Archive, *render.Renderer, error) {
	archive, err := mediashelf.OpenArchive(c.String("db"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open archive: %w", err)
	}

	renderer, err := archive.NewRenderer(channelLinks{channel: c.String("channel")})
	if err != nil {
		archive.Close()
		return nil, nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return archive, renderer, nil
}

// channelLinks builds origin links for offline reads, where no gateway
// connection exists to resolve them.
type channelLinks struct {
	channel string
}

func (l channelLinks) MessageLink(messageID int64) string {
	return fmt.Sprintf("https://t.me/%s/%d", l.channel, messageID)
}

func setupLogger(c *cli.Context) error {
	return applyLogLevel(c.String("log-level"))
}

func applyLogLevel(levelStr string) error {
	levelStr = strings.ToLower(levelStr)

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
