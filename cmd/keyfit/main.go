// Copyright 2025 Poiesic Systems
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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/keyfit"
	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty/pairfreq"
	"github.com/poiesic/keyfit/results"
	"github.com/poiesic/keyfit/runner"
	"github.com/poiesic/keyfit/solver"
)

func main() {
	app := &cli.App{
		Name:  "keyfit",
		Usage: "Letter-to-key assignment optimizer for reduced keyboards",
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
				Name:   "solve",
				Usage:  "Search for the best layout at one key count",
				Action: solveCommand,
				Flags: append(searchFlags(),
					&cli.IntFlag{
						Name:     "k",
						Usage:    "Number of keys to assign letters to",
						Required: true,
					},
				),
			},
			{
				Name:   "sweep",
				Usage:  "Search a range of key counts and tabulate the tradeoff",
				Action: sweepCommand,
				Flags: append(searchFlags(),
					&cli.IntFlag{
						Name:  "from",
						Usage: "Smallest key count to search",
						Value: 8,
					},
					&cli.IntFlag{
						Name:  "to",
						Usage: "Largest key count to search",
						Value: 14,
					},
				),
			},
			{
				Name:   "results",
				Usage:  "Print stored results and the key-count tradeoff table",
				Action: resultsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "pairs",
						Aliases:  []string{"p"},
						Usage:    "Path to the pair penalty CSV table",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pairs",
			Aliases:  []string{"p"},
			Usage:    "Path to the pair penalty CSV table",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "strategy",
			Aliases: []string{"s"},
			Usage:   "Search strategy (exhaustive, genetic, sampled)",
			Value:   "genetic",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Random seed for genetic and sampled searches",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Parallel workers for exhaustive search (0 uses half the CPUs)",
		},
		&cli.IntFlag{
			Name:  "samples",
			Usage: "Random draws for the sampled strategy",
			Value: 10000,
		},
		&cli.IntFlag{
			Name:  "generations",
			Usage: "Generation budget for the genetic strategy",
			Value: 500,
		},
		&cli.IntFlag{
			Name:  "population",
			Usage: "Population size per genetic island",
			Value: 64,
		},
		&cli.IntFlag{
			Name:  "islands",
			Usage: "Independent genetic populations",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "min-key-size",
			Usage: "Minimum letters per key",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "max-key-size",
			Usage: "Maximum letters per key (0 means unlimited)",
		},
		&cli.StringSliceFlag{
			Name:  "prohibit",
			Usage: "Letter pair that must not share a key (repeatable), e.g. --prohibit ab",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Stop searching after this duration (0 means no limit)",
		},
	}
}

func solveCommand(c *cli.Context) error {
	opt, run, err := setupSearch(c)
	if err != nil {
		return err
	}
	defer opt.Close()
	defer run.Release()

	strategy, err := core.ParseStrategy(c.String("strategy"))
	if err != nil {
		return err
	}
	ctx, cancel := searchContext(c)
	defer cancel()

	if err := run.Run(ctx, runner.Job{K: c.Int("k"), Strategy: strategy}); err != nil &&
		err != context.Canceled && err != context.DeadlineExceeded {
		return err
	}
	return printResults(opt)
}

func sweepCommand(c *cli.Context) error {
	opt, run, err := setupSearch(c)
	if err != nil {
		return err
	}
	defer opt.Close()
	defer run.Release()

	strategy, err := core.ParseStrategy(c.String("strategy"))
	if err != nil {
		return err
	}
	ctx, cancel := searchContext(c)
	defer cancel()

	jobs := runner.Sweep(c.Int("from"), c.Int("to"), strategy)
	if err := run.Run(ctx, jobs...); err != nil &&
		err != context.Canceled && err != context.DeadlineExceeded {
		return err
	}
	return printResults(opt)
}

func resultsCommand(c *cli.Context) error {
	model, err := pairfreq.Load(c.String("pairs"))
	if err != nil {
		return fmt.Errorf("failed to load pair penalties: %w", err)
	}
	opt, err := keyfit.NewOptimizer(c.String("db"), model)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer opt.Close()

	return printResults(opt)
}

func setupSearch(c *cli.Context) (*keyfit.Optimizer, *runner.Runner, error) {
	model, err := pairfreq.Load(c.String("pairs"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pair penalties: %w", err)
	}

	opt, err := keyfit.NewOptimizer(c.String("db"), model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	engineOpts := []solver.Option{
		solver.WithSeed(c.Uint64("seed")),
		solver.WithSamples(c.Int("samples")),
		solver.WithGenerations(c.Int("generations")),
		solver.WithPopulationSize(c.Int("population")),
		solver.WithIslands(c.Int("islands")),
	}
	if c.Int("workers") > 0 {
		engineOpts = append(engineOpts, solver.WithWorkers(c.Int("workers")))
	}
	if c.Int("max-key-size") > 0 || c.Int("min-key-size") > 1 {
		maxSize := c.Int("max-key-size")
		if maxSize == 0 {
			maxSize = core.AlphabetSize
		}
		engineOpts = append(engineOpts, solver.WithKeySizeBounds(c.Int("min-key-size"), maxSize))
	}
	for _, raw := range c.StringSlice("prohibit") {
		pair, parseErr := core.ParseGroup(raw)
		if parseErr != nil {
			opt.Close()
			return nil, nil, fmt.Errorf("invalid prohibited pair %q: %w", raw, parseErr)
		}
		engineOpts = append(engineOpts, solver.WithProhibitedPairs(pair))
	}

	run, err := opt.NewRunner(runner.WithEngineOptions(engineOpts...))
	if err != nil {
		opt.Close()
		return nil, nil, err
	}
	return opt, run, nil
}

func searchContext(c *cli.Context) (context.Context, context.CancelFunc) {
	if timeout := c.Duration("timeout"); timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

func printResults(opt *keyfit.Optimizer) error {
	recs := opt.Aggregator().Recommend()
	if len(recs) == 0 {
		fmt.Println("no results stored yet")
		return nil
	}
	for _, rec := range recs {
		result := rec.Result
		marker := " "
		if result.Complete {
			marker = "*"
		}
		note := ""
		if rec.Suboptimal {
			note = fmt.Sprintf("  (%d keys already reach %s)", boundK(recs, rec), rec.Bound.String())
		}
		fmt.Printf("%2d keys %s %s > %s%s\n",
			result.K, marker, result.Penalty.String(), result.Partition.String(), note)
	}
	return nil
}

// boundK finds the smallest K whose penalty set the bound for rec.
func boundK(recs []results.Recommendation, rec results.Recommendation) int {
	for _, r := range recs {
		if r.Result.Penalty == rec.Bound {
			return r.Result.K
		}
	}
	return rec.Result.K
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
