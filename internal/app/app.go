// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package app wires the shield drivers into the clock appliance: the
// periodic tick keeps the MM:SS counter, the main loop polls the buttons
// and multiplexes the display between the clock and the potentiometer
// voltage.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Ahmed-yasser-cpp/MyCSE211Project/mcp3008"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/seg7x4"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/segsim"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/segsink"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/sn74hc595"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/tickclock"
	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// App is the shield clock appliance.
type App struct {
	config  *Config
	counter *tickclock.Counter
	ticker  *tickclock.Ticker
	display *seg7x4.Dev
	adc     *mcp3008.Dev
	spiPort spi.PortCloser

	resetButton   *button
	spareButton   *button
	voltageButton *button

	sink   *segsink.Sink
	server *http.Server

	debounce time.Duration

	askDone chan bool
	done    chan bool
}

func outPin(name string) (gpio.PinOut, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("app: no such pin %q", name)
	}
	return pin, nil
}

// New builds the appliance from its config. In simulation mode the display
// renders to the terminal and the buttons and the ADC are absent.
func New(config *Config, simulation bool) (*App, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("app: %v", err)
	}

	a := &App{
		config:   config,
		counter:  &tickclock.Counter{},
		sink:     segsink.New(),
		debounce: time.Duration(config.DebounceMs) * time.Millisecond,
		askDone:  make(chan bool),
		done:     make(chan bool),
	}
	a.ticker = tickclock.NewTicker(a.counter, time.Duration(config.TickIntervalMs)*time.Millisecond)

	var frames seg7x4.FrameWriter
	if simulation {
		frames = segsim.New(nil)
	} else {
		data, err := outPin(config.DataPin)
		if err != nil {
			return nil, err
		}
		clock, err := outPin(config.ClockPin)
		if err != nil {
			return nil, err
		}
		latch, err := outPin(config.LatchPin)
		if err != nil {
			return nil, err
		}
		sr, err := sn74hc595.New(data, clock, latch)
		if err != nil {
			return nil, err
		}
		frames = sr

		if a.resetButton, err = newButton(config.ResetButtonPin); err != nil {
			return nil, err
		}
		if a.spareButton, err = newButton(config.SpareButtonPin); err != nil {
			return nil, err
		}
		if a.voltageButton, err = newButton(config.VoltageButtonPin); err != nil {
			return nil, err
		}

		port, err := spireg.Open(config.SPIPort)
		if err != nil {
			return nil, fmt.Errorf("app: opening spi port: %v", err)
		}
		a.spiPort = port
		ref := physic.ElectricPotential(config.ADCRefMillivolts) * physic.MilliVolt
		if a.adc, err = mcp3008.New(port, &mcp3008.Opts{Ref: ref}); err != nil {
			port.Close()
			return nil, err
		}
	}

	display, err := seg7x4.New(
		seg7x4.MultiWriter(frames, a.sink),
		&seg7x4.Opts{Settle: time.Duration(config.SettleMs) * time.Millisecond})
	if err != nil {
		return nil, err
	}
	a.display = display

	if config.ListenAddr != "" {
		a.server = &http.Server{
			Addr:    config.ListenAddr,
			Handler: handlers.RecoveryHandler()(newRouter(a.counter, a.sink)),
		}
	}
	return a, nil
}

// Start launches the ticker, the debug API and the polling loop.
func (a *App) Start() {
	logrus.Infof("Start shield clock")
	a.ticker.Start()
	if a.server != nil {
		go func() {
			logrus.Infof("Debug API listening on %s", a.server.Addr)
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("Debug API: %v", err)
			}
		}()
	}
	go a.loop()
}

func (a *App) loop() {
	for {
		select {
		case <-a.askDone:
			a.done <- true
			return
		default:
		}
		a.step()
	}
}

// step is one pass of the polling loop: buttons first, then a single
// multiplexing pass of whichever view is active.
func (a *App) step() {
	if a.resetButton.pressed() {
		logrus.Debugf("Reset button pressed")
		a.counter.Reset()
		time.Sleep(a.debounce)
	}
	if a.spareButton.pressed() {
		// Wired on the shield but not assigned to anything.
		logrus.Debugf("Spare button pressed")
	}
	if a.voltageButton.pressed() && a.adc != nil {
		v, err := a.adc.ReadVoltage(a.config.ADCChannel)
		if err != nil {
			logrus.Warningf("Reading potentiometer: %v", err)
			return
		}
		// 2.75V shows as 2.750: integer millivolts with the decimal point
		// after the first digit.
		if err := a.display.DisplayNumber(int(v/physic.MilliVolt), true, 0); err != nil {
			logrus.Warningf("Display: %v", err)
		}
		return
	}
	// MM.SS with the dot between minutes and seconds.
	if err := a.display.DisplayNumber(a.counter.Value(), true, 1); err != nil {
		logrus.Warningf("Display: %v", err)
	}
}

// Stop shuts the loop, the ticker and the debug API down and blanks the
// display.
func (a *App) Stop() {
	logrus.Infof("Stop shield clock")
	a.askDone <- true
	<-a.done
	a.ticker.Stop()
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			logrus.Warningf("Stopping debug API: %v", err)
		}
	}
	if err := a.display.Halt(); err != nil {
		logrus.Warningf("Halting display: %v", err)
	}
	if a.spiPort != nil {
		if err := a.spiPort.Close(); err != nil {
			logrus.Warningf("Closing spi port: %v", err)
		}
	}
}
