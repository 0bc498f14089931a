package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gridscout/scanner/internal/config"
	"github.com/gridscout/scanner/internal/influx"
	"github.com/gridscout/scanner/internal/logging"
	"github.com/gridscout/scanner/internal/scanner"
	"github.com/gridscout/scanner/internal/session"
	"github.com/gridscout/scanner/internal/storage"
	"github.com/gridscout/scanner/internal/world"
	"github.com/rs/zerolog"
)

// app is everything one CLI invocation runs on.
type app struct {
	log     zerolog.Logger
	world   *world.World
	history storage.Backend
	session *session.Session

	closers []func() error
}

// newApp loads config, sets up logging and history, loads the world and
// wires the scanner. Call Close when done, also after an error.
func newApp(ctx context.Context) (*app, error) {
	start := time.Now()
	a := &app{log: zerolog.Nop()}

	if err := config.Load(configDir); err != nil && !config.IsNotFound(err) {
		return a, err
	}

	if err := a.setupLogging(start); err != nil {
		return a, err
	}

	w, err := loadWorld()
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to load world")
		return a, err
	}
	a.world = w

	storageCfg := config.GetStorageConfig()
	a.history, err = storage.NewBackend(storageCfg, a.log)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to create storage backend")
		return a, err
	}
	a.closers = append(a.closers, a.history.Close)
	if err := a.history.Init(); err != nil {
		a.log.Error().Err(err).Msg("Failed to initialize storage backend")
		return a, err
	}
	a.log.Info().Str("type", storageCfg.Type).Msg("Storage backend initialized")

	var telemetry scanner.Recorder
	manager := influx.NewManager(config.GetInfluxConfig(), a.log)
	switch err := manager.Connect(ctx); {
	case errors.Is(err, influx.ErrDisabled):
		a.log.Debug().Msg("Scan telemetry disabled")
	case err != nil:
		a.log.Warn().Err(err).Msg("Scan telemetry unavailable")
		a.closers = append(a.closers, manager.Close)
	default:
		telemetry = manager
		a.closers = append(a.closers, manager.Close)
	}

	kv := logging.NewKVLogger(a.log)
	sc, err := scanner.New(scanner.Dependencies{
		Maps:        w,
		Recorder:    a.history,
		Telemetry:   telemetry,
		Logger:      kv,
		CostPerCell: w.CostPerCell(),
	})
	if err != nil {
		return a, err
	}

	a.session, err = session.New(session.Dependencies{
		World:   w,
		Scanner: sc,
		History: a.history,
		Logger:  kv,
	})
	if err != nil {
		return a, err
	}
	return a, nil
}

func (a *app) setupLogging(start time.Time) error {
	level := config.GetString("logLevel")
	if logLevel != "" {
		level = logLevel
	}

	opts := logging.Options{Level: level}
	if logConsole {
		opts.Console = os.Stderr
	}
	if logsDir := config.GetString("logsDir"); logsDir != "" {
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return fmt.Errorf("failed to create logs dir: %w", err)
		}
		f, err := os.OpenFile(logging.LogFilePath(logsDir, "gridscan", start), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, f.Close)
		opts.File = f
	}
	if config.GetBool("graylog.enabled") {
		opts.GraylogAddress = config.GetString("graylog.address")
	}

	log, closeLog, err := logging.Setup(opts)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, closeLog)
	a.log = log
	a.log.Info().Str("version", Version).Str("configDir", configDir).Msg("gridscan starting")
	return nil
}

// loadWorld reads the world file named by --world or world.file. A world
// without its own costPerCell takes scan.costPerCell.
func loadWorld() (*world.World, error) {
	path := worldFile
	if path == "" {
		path = config.GetString("world.file")
	}
	if path == "" {
		return nil, errors.New("no world file: set --world or world.file")
	}

	desc, err := world.ReadDescription(path)
	if err != nil {
		return nil, err
	}
	if desc.CostPerCell == 0 {
		desc.CostPerCell = config.GetInt("scan.costPerCell")
	}
	return desc.Build()
}

// run executes one session command and prints its result.
func (a *app) run(out io.Writer, line string) error {
	result, err := a.session.Execute(line)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintln(out, result)
	}
	return nil
}

// Close releases everything newApp opened, newest first.
func (a *app) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
