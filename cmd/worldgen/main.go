package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cube-world/internal/commands"
	"cube-world/internal/env"
	"cube-world/internal/logger"
	"cube-world/internal/worldconfig"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	prefs, cfgErr := worldconfig.Load(env.ConfigPath(worldconfig.ConfigPath))

	log := logger.New(prefs.LogFile, os.Stderr)
	defer log.Close()
	if err := log.SetLevelName(prefs.LogLevel); err != nil {
		log.Warnf("log level: %v", err)
	}
	if cfgErr != nil {
		log.Warnf("using default config: %v", cfgErr)
	}

	a := &app{prefs: prefs, log: log, out: os.Stdout}
	reg := newRegistry(a)
	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, commands.ErrMissingSubcommand) {
			usage(os.Stderr, reg)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer, reg *commands.Registry) {
	fmt.Fprintln(w, "usage: worldgen <command> [flags]")
	fmt.Fprintln(w, "commands:")
	reg.Usage(w)
}
