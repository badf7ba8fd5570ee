package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/obsenv/gensetmon/agc150"
	"github.com/obsenv/gensetmon/config"
	"github.com/obsenv/gensetmon/simulator"
)

func main() {

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		slog.Error("usage: gensetmon <config.yaml>")
		os.Exit(1)
	}

	cfg, err := config.Read(os.Args[1])
	if err != nil {
		slog.Error("Failed to read config", "error", err)
		os.Exit(1)
	}

	deviceID := uuid.New()
	if cfg.Device.ID != "" {
		deviceID, err = uuid.Parse(cfg.Device.ID)
		if err != nil {
			slog.Error("Failed to parse device id", "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	timeout := time.Duration(cfg.Device.TimeoutSecs) * time.Second
	pollInterval := time.Duration(cfg.Device.PollIntervalSecs) * time.Second

	slog.Info("Starting genset monitor...")

	var genset *agc150.Connector
	if cfg.Simulation.Simulate {
		// Serve a simulated controller in-process and point the connector
		// at it, the real transport is never opened.
		endpoint := fmt.Sprintf("localhost:%d", cfg.Simulation.Port)
		sim, err := simulator.New(endpoint, agc150.DefaultSimulatorBank())
		if err != nil {
			slog.Error("Failed to create simulator", "error", err)
			os.Exit(1)
		}
		if err := sim.Start(); err != nil {
			slog.Error("Failed to start simulator", "error", err)
			os.Exit(1)
		}
		defer sim.Stop()

		genset, err = agc150.New(deviceID, endpoint, cfg.Device.UnitID, timeout)
		if err != nil {
			slog.Error("Failed to create connector", "error", err)
			os.Exit(1)
		}
	} else if cfg.Device.SerialDevice != "" {
		genset, err = agc150.NewRTU(deviceID, cfg.Device.SerialDevice, cfg.Device.BaudRate, cfg.Device.UnitID, timeout)
		if err != nil {
			slog.Error("Failed to create connector", "error", err)
			os.Exit(1)
		}
	} else {
		endpoint := fmt.Sprintf("%s:%d", cfg.Device.Host, cfg.Device.Port)
		genset, err = agc150.New(deviceID, endpoint, cfg.Device.UnitID, timeout)
		if err != nil {
			slog.Error("Failed to create connector", "error", err)
			os.Exit(1)
		}
	}

	go genset.Run(ctx, pollInterval)

	// Samples and poll failures are handed to the wider telemetry publisher;
	// for now that is the log.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sample := <-genset.Telemetry:
				power, _ := sample.Field("generatorPower")
				frequency, _ := sample.Field("generatorFrequencyL1")
				slog.Info("Genset sample",
					"time", sample.Time,
					"fields", len(sample.Fields),
					"generator_power_kw", power.Value,
					"generator_frequency_hz", frequency.Value,
				)
			case failure := <-genset.Failures:
				slog.Warn("Poll cycle failed",
					"time", failure.Time,
					"consecutive", failure.Consecutive,
					"error", failure.Err,
				)
			}
		}
	}()

	// wait for a ctrl-c interrupt before exiting
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	<-signalChan

	// cancel any open go-routines and give them up to 100ms to gracefully shutdown
	cancel()
	time.Sleep(time.Millisecond * 100)

	slog.Info("Exiting")
}
