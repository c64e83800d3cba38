package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"monster_world/internal/combat"
	"monster_world/internal/config"
	"monster_world/internal/logger"
)

func main() {
	var cfgDir, in, format, out string
	var asJSON bool
	flag.StringVar(&cfgDir, "config", ".", "directory holding simsvc.yaml")
	flag.StringVar(&in, "in", "", "case input, - for stdin (default from settings)")
	flag.StringVar(&format, "format", "", "input format: stream or yaml (default from settings)")
	flag.StringVar(&out, "out", "", "output file (default stdout)")
	flag.BoolVar(&asJSON, "json", false, "write results as JSON")
	flag.Parse()

	settings, err := config.LoadSettings(cfgDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(settings, in, format, out, asJSON)

	log := logger.Init(settings.LogLevel, os.Stderr)

	cases, err := readCases(settings)
	if err != nil {
		log.Fatal().Err(err).Str("input", settings.InputPath).Msg("reading cases")
	}

	metrics, err := combat.NewMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}

	results := make([]combat.SimResult, 0, len(cases))
	for i := range cases {
		env := &combat.Env{
			Logger:  log.With().Int("case", i+1).Logger(),
			Metrics: metrics,
		}
		res := combat.Simulate(env, &cases[i], settings.OutputJSON)
		res.Case = i + 1
		results = append(results, res)
	}

	if err := writeResults(settings, results); err != nil {
		log.Fatal().Err(err).Str("output", settings.OutputPath).Msg("writing results")
	}
	log.Debug().Int("cases", len(results)).Msg("done")
}

func applyFlags(s *config.Settings, in, format, out string, asJSON bool) {
	if in != "" {
		s.InputPath = in
	}
	if format != "" {
		s.InputFormat = format
	}
	if out != "" {
		s.OutputPath = out
	}
	if asJSON {
		s.OutputJSON = true
	}
}

func readCases(s *config.Settings) ([]config.Scenario, error) {
	if s.InputFormat == "yaml" {
		return config.LoadScenarios(s.InputPath)
	}
	if s.InputPath == "" || s.InputPath == "-" {
		return config.ParseCases(os.Stdin)
	}
	f, err := os.Open(s.InputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return config.ParseCases(f)
}

func writeResults(s *config.Settings, results []combat.SimResult) error {
	if s.OutputJSON {
		b := combat.MarshalPretty(results)
		if s.OutputPath == "" {
			_, err := os.Stdout.Write(append(b, '\n'))
			return err
		}
		return os.WriteFile(s.OutputPath, b, 0644)
	}

	var w io.Writer = os.Stdout
	if s.OutputPath != "" {
		f, err := os.Create(s.OutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := writeTranscript(bw, results); err != nil {
		return err
	}
	return bw.Flush()
}

func writeTranscript(w io.Writer, results []combat.SimResult) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "Case %d:\n", res.Case); err != nil {
			return err
		}
		for _, line := range res.Lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
