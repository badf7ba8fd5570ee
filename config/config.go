package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeviceConfig describes how to reach the AGC 150 controller and how often to
// poll it. Either a TCP endpoint (host/port) or a serial device is given,
// never both.
type DeviceConfig struct {
	ID               string `yaml:"id"` // device uuid used in telemetry
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	SerialDevice     string `yaml:"serial_device"`
	BaudRate         int    `yaml:"baud_rate"`
	UnitID           uint8  `yaml:"unit_id"`
	PollIntervalSecs int    `yaml:"poll_interval_secs"`
	TimeoutSecs      int    `yaml:"timeout_secs"` // per connect and per read operation
}

// SimulationConfig enables the in-process simulator in place of the real
// transport.
type SimulationConfig struct {
	Simulate bool `yaml:"simulate"`
	Port     int  `yaml:"port"` // port the simulator serves on, loopback only
}

type Config struct {
	Device     DeviceConfig     `yaml:"device"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// Read loads, defaults and validates the configuration at `path`.
func Read(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Device.Port == 0 {
		c.Device.Port = 502
	}
	if c.Device.BaudRate == 0 {
		c.Device.BaudRate = 9600
	}
	if c.Device.UnitID == 0 {
		c.Device.UnitID = 1
	}
	if c.Device.PollIntervalSecs == 0 {
		c.Device.PollIntervalSecs = 1
	}
	if c.Device.TimeoutSecs == 0 {
		c.Device.TimeoutSecs = 5
	}
	if c.Simulation.Port == 0 {
		c.Simulation.Port = 5020
	}
}

// Validate checks configuration correctness. It does not mutate the
// configuration.
func (c *Config) Validate() error {
	if c.Simulation.Simulate {
		return nil // endpoint comes from the simulator
	}

	if c.Device.Host == "" && c.Device.SerialDevice == "" {
		return errors.New("either device.host or device.serial_device is required")
	}
	if c.Device.Host != "" && c.Device.SerialDevice != "" {
		return errors.New("device.host and device.serial_device are mutually exclusive")
	}
	if c.Device.Port < 1 || c.Device.Port > 65535 {
		return fmt.Errorf("device.port %d out of range", c.Device.Port)
	}
	if c.Device.PollIntervalSecs < 1 {
		return errors.New("device.poll_interval_secs must be >= 1")
	}
	if c.Device.TimeoutSecs < 1 {
		return errors.New("device.timeout_secs must be >= 1")
	}

	return nil
}
