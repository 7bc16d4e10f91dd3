// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/urfave/cli.v2"

	"github.com/monad-system/monad/pkg/board"
	"github.com/monad-system/monad/pkg/cartridge"
	"github.com/monad-system/monad/pkg/cpu"
	"github.com/monad-system/monad/pkg/iobus"
)

const consolePort = 0x0000

func newLogger(logFile string, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		lvl,
	)

	cores := []zapcore.Core{consoleCore}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(f),
			lvl,
		)
		cores = append(cores, fileCore)
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cartridge",
				Aliases: []string{"c"},
				Usage:   "boot cartridge image to load at RAM address 0",
			},
			&cli.IntFlag{
				Name:    "ram-bytes",
				Aliases: []string{"m"},
				Usage:   "RAM size in bytes",
				Value:   4096,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "path to a JSON log file; console logging always runs",
				Value: "monad.log",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zap log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "single-step",
				Usage: "run one fetch-decode-execute cycle per Enter keypress",
			},
		},
		Name:    "monad",
		Usage:   "Run a Monad boot cartridge against the Monad CPU core",
		Version: "v0.1.0",
		Action:  run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log, err := newLogger(c.String("log-file"), c.String("log-level"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer log.Sync()

	core := cpu.New(log)
	mb := board.New(core, log)

	if path := c.String("cartridge"); path != "" {
		cart, err := cartridge.Load(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("loading boot cartridge: %v", err), 1)
		}
		mb.WithBootCartridge(cart)
	}

	console := iobus.NewConsoleDevice(os.Stdout, os.Stdin)
	mb.IOBus().Install(consolePort, console.Handler())

	system := board.NewSystem(mb, c.Int("ram-bytes"), log)
	system.Motherboard.Init(system.Memory)

	core.Running = true
	if c.Bool("single-step") {
		return runSingleStep(system, log)
	}

	if err := system.Motherboard.RunCPU(system.Memory); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// runSingleStep executes one cycle per Enter keypress, printing the CPU's
// register state after each one.
func runSingleStep(system *board.System, log *zap.Logger) error {
	core := system.Motherboard.CPUCore().(*cpu.CPU)
	reader := os.Stdin

	for core.Running {
		buf := make([]byte, 1)
		if _, err := reader.Read(buf); err != nil {
			break
		}
		if err := core.ExecuteCycle(system.Memory, system.Motherboard.IOBus()); err != nil {
			log.Error("cpu fault", zap.Error(err))
			return cli.Exit(err.Error(), 1)
		}
		state := core.State()
		fmt.Printf("rip=%#x rflags=%#x r0=%#x r1=%#x\n",
			state.Registers.RIP, state.Registers.RFlags, state.Registers.R[0], state.Registers.R[1])
	}
	return nil
}
