// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command vecreplay runs YAML scenarios against vec.Vector and writes a
// JSON trace of every step.
//
//	vecreplay [-config vecreplay.toml] [-trace out.json] scenario.yaml...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"code.hybscloud.com/vec/internal/config"
	"code.hybscloud.com/vec/internal/logging"
	"code.hybscloud.com/vec/internal/scenario"
	"code.hybscloud.com/vec/internal/trace"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecreplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to vecreplay TOML config")
	tracePath := fs.String("trace", "", "trace output path, - for stdout (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: vecreplay [-config file] [-trace path] scenario.yaml...")
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if *tracePath != "" {
		cfg.TracePath = *tracePath
	}
	log := logging.New("vecreplay", stderr, cfg.LogLevel, cfg.NoColor)

	doc := trace.NewDocument()
	log.Info().Str("run_id", doc.RunID).Int("scenarios", fs.NArg()).Msg("replay start")
	for _, path := range fs.Args() {
		s, err := scenario.Load(path)
		if err != nil {
			log.Error().Err(err).Msg("scenario rejected")
			doc.Failed = true
			if cfg.StopOnFailure {
				break
			}
			continue
		}
		doc.Add(scenario.Run(s, log))
		if doc.Failed && cfg.StopOnFailure {
			break
		}
	}

	if err := trace.Write(cfg.TracePath, stdout, doc, cfg.Indent); err != nil {
		log.Error().Err(err).Msg("trace not written")
		return 1
	}
	if doc.Failed {
		log.Error().Str("run_id", doc.RunID).Msg("replay failed")
		return 1
	}
	log.Info().Str("run_id", doc.RunID).Int("reports", len(doc.Reports)).Msg("replay ok")
	return 0
}
