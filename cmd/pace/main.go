package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/paceline/pace/internal/config"
	"github.com/paceline/pace/internal/simulate"
	"github.com/paceline/pace/pkg/eta"
)

// BuildDate: Binary file compilation time
// BuildVersion: Binary compiled GIT version
var (
	BuildDate    string
	BuildVersion string
)

func main() {
	app := cli.NewApp()
	app.Name = "pace"
	app.Usage = "live progress and ETA estimation for iterative work"
	app.Description = "Runs a simulated workload and displays a live progress line " +
		"with throughput and ETA, using either a cumulative average or an " +
		"exponentially weighted moving average estimator."
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML config file",
		},
		cli.IntFlag{
			Name:  "total,n",
			Usage: "total number of iterations",
		},
		cli.StringFlag{
			Name:  "estimator,e",
			Usage: "throughput estimator: simple or ewma",
		},
		cli.Float64Flag{
			Name:  "alpha",
			Usage: "EWMA weight on the most recent iteration, in [0,1]",
		},
		cli.Float64Flag{
			Name:  "start-value",
			Usage: "EWMA prior throughput in iterations per second",
		},
		cli.IntFlag{
			Name:  "batch,b",
			Usage: "iterations reported per update",
		},
		cli.DurationFlag{
			Name:  "mean-delay",
			Usage: "mean simulated delay per update",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the simulated delays",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "suppress the live progress line",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.Errorf("pace: %v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return err
	}

	// Flags win over file and environment.
	if c.IsSet("total") {
		cfg.Total = c.Int("total")
	}
	if c.IsSet("estimator") {
		cfg.Estimator = c.String("estimator")
	}
	if c.IsSet("alpha") {
		cfg.Alpha = c.Float64("alpha")
	}
	if c.IsSet("start-value") {
		cfg.StartValue = c.Float64("start-value")
	}
	if c.IsSet("batch") {
		cfg.Batch = c.Int("batch")
	}
	if c.IsSet("mean-delay") {
		cfg.MeanDelay = c.Duration("mean-delay")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.Bool("quiet") {
		cfg.Progress = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	strategy, err := cfg.NewStrategy()
	if err != nil {
		return err
	}

	est, err := eta.New(cfg.Total, strategy,
		eta.WithRenderOptions(cfg.RenderOptions()))
	if err != nil {
		return err
	}

	after := func() {}
	if cfg.Progress {
		after = est.ShowProgress
	}

	w := simulate.New(cfg.Seed, cfg.MeanDelay)
	err = w.Run(est, simulate.RunOptions{
		Total: cfg.Total,
		Batch: cfg.Batch,
		Sleep: time.Sleep,
		After: after,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Done, took %s\n", eta.FormatDuration(est.TotalElapsed().Seconds()))
	return nil
}
