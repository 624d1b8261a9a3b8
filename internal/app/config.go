// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package app

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const paramFilename = "param.yaml"

// Config carries the appliance parameters: pin names, timing and the debug
// HTTP address. A default file matching the original shield wiring is
// written on first run, so the zero-config path works out of the box.
type Config struct {
	// Shift register lines.
	DataPin  string `yaml:"dataPin"`
	ClockPin string `yaml:"clockPin"`
	LatchPin string `yaml:"latchPin"`

	// Push buttons, active low with internal pull-ups.
	ResetButtonPin   string `yaml:"resetButtonPin"`
	SpareButtonPin   string `yaml:"spareButtonPin"`
	VoltageButtonPin string `yaml:"voltageButtonPin"`

	// Potentiometer behind an MCP3008.
	SPIPort          string `yaml:"spiPort"`
	ADCChannel       int    `yaml:"adcChannel"`
	ADCRefMillivolts int    `yaml:"adcRefMillivolts"`

	TickIntervalMs int `yaml:"tickIntervalMs"`
	SettleMs       int `yaml:"settleMs"`
	DebounceMs     int `yaml:"debounceMs"`

	// ListenAddr serves the debug API; empty disables it.
	ListenAddr string `yaml:"listenAddr"`
}

// DefaultConfig mirrors the original board constants.
func DefaultConfig() *Config {
	return &Config{
		DataPin:          "GPIO8",
		ClockPin:         "GPIO7",
		LatchPin:         "GPIO4",
		ResetButtonPin:   "GPIO5",
		SpareButtonPin:   "GPIO6",
		VoltageButtonPin: "GPIO13",
		SPIPort:          "",
		ADCChannel:       0,
		ADCRefMillivolts: 3300,
		TickIntervalMs:   100,
		SettleMs:         2,
		DebounceMs:       200,
		ListenAddr:       ":8080",
	}
}

// NewConfig loads the param file from configDir, creating the folder and a
// default file when missing.
func NewConfig(configDir string) *Config {
	if _, err := os.Stat(configDir); err != nil {
		if !os.IsNotExist(err) {
			logrus.Fatalf("Unable to access config folder: %s", configDir)
		}
		logrus.Printf("Creation of config folder: %s", configDir)
		if err = os.MkdirAll(configDir, 0770); err != nil {
			logrus.Fatalf("Unable to create config folder: %v", err)
		}
	}

	filename := filepath.Join(configDir, paramFilename)
	raw, err := os.ReadFile(filename)
	if err != nil {
		logrus.Infof("Create default param file")
		config := DefaultConfig()
		config.Save(filename)
		return config
	}

	config := &Config{}
	if err = yaml.Unmarshal(raw, config); err != nil {
		logrus.Fatalf("Unable to interpret config file: %v", err)
	}
	return config
}

// Save serializes the config to filename.
func (c *Config) Save(filename string) {
	logrus.Debugf("Save param file: %s", filename)
	raw, err := yaml.Marshal(c)
	if err != nil {
		logrus.Fatalf("Unable to serialize param file: %v", err)
	}
	if err = os.WriteFile(filename, raw, 0660); err != nil {
		logrus.Fatalf("Unable to save param file: %v", err)
	}
}
