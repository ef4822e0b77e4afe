// Command tourney assigns every fixture of a round-robin tournament to a
// round and prints the schedule.
//
// Usage:
//
//	tourney [--config FILE] [--max-rounds N] [--capacity N] [--timeout D]
//	        [--verify] [--dot FILE] [--plain] [--log-level LEVEL]
//
// Without --config the built-in seven-club championship is scheduled.
//
// Exit codes:
//
//	0  schedule found
//	1  configuration or I/O error
//	2  proven infeasible
//	3  inconclusive (timeout, interrupt, node limit)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourney/config"
	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/internal/logging"
	"github.com/katalvlaran/tourney/satcheck"
	"github.com/katalvlaran/tourney/schedule"
)

const (
	exitSolved       = 0
	exitError        = 1
	exitInfeasible   = 2
	exitInconclusive = 3
)

type flags struct {
	configPath string
	maxRounds  int
	capacity   int
	nodeLimit  int64
	timeout    time.Duration
	verify     bool
	dotPath    string
	plain      bool
	logLevel   string
	logDev     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*flags, *pflag.FlagSet, error) {
	f := &flags{}
	fs := pflag.NewFlagSet("tourney", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.configPath, "config", "c", "", "tournament YAML file (default: built-in seven-club sample)")
	fs.IntVar(&f.maxRounds, "max-rounds", 0, "override max_rounds from the config")
	fs.IntVar(&f.capacity, "capacity", 0, "override capacity_per_round from the config")
	fs.Int64Var(&f.nodeLimit, "node-limit", 0, "stop after this many search nodes (0 = unlimited)")
	fs.DurationVar(&f.timeout, "timeout", 0, "give up after this long (0 = no timeout)")
	fs.BoolVar(&f.verify, "verify", false, "cross-check the outcome with the SAT oracle")
	fs.StringVar(&f.dotPath, "dot", "", "write a Graphviz diagram of the schedule to this file")
	fs.BoolVar(&f.plain, "plain", false, "print plain text instead of styled boxes")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&f.logDev, "log-console", false, "human-readable log lines instead of JSON")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSolved
		}
		return exitError
	}

	log, err := logging.New(f.logLevel, f.logDev)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer func() { _ = log.Sync() }()

	// 1. Load the tournament
	tour := config.Default()
	if f.configPath != "" {
		if tour, err = config.Load(f.configPath); err != nil {
			log.Error("load config", zap.Error(err))
			return exitError
		}
	}
	if fs.Changed("max-rounds") {
		tour.MaxRounds = f.maxRounds
	}
	if fs.Changed("capacity") {
		tour.Capacity = f.capacity
	}

	// 2. Build the problem
	p, err := tour.Build()
	if err != nil {
		log.Error("build problem", zap.Error(err))
		return exitError
	}
	log.Info("problem ready",
		zap.Int("teams", len(p.Teams)),
		zap.Int("fixtures", len(p.Fixtures)),
		zap.Int("conflicts", p.Graph.EdgeCount()),
		zap.Int("components", len(p.Graph.Components())),
		zap.Int("maxRounds", p.MaxRounds),
		zap.Int("capacity", p.Capacity),
	)
	if bound := p.Graph.CliqueBound(); bound > p.MaxRounds {
		log.Warn("round budget is below a conflict clique", zap.Int("clique", bound), zap.Int("maxRounds", p.MaxRounds))
	}

	// 3. Solve
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	opts := append(p.Options(),
		engine.WithContext(ctx),
		engine.WithLogger(log.Named("engine")),
		engine.WithNodeLimit(f.nodeLimit),
	)
	res, err := engine.Solve(p.Graph, opts...)
	if err != nil && !errors.Is(err, engine.ErrCancelled) {
		log.Error("solve", zap.Error(err))
		return exitError
	}
	log.Info("search finished",
		zap.Stringer("status", res.Status),
		zap.Int64("nodes", res.Stats.Nodes),
		zap.Int64("backtracks", res.Stats.Backtracks),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)

	// 4. Present
	code := exitSolved
	switch res.Status {
	case engine.StatusSolved:
		if err := engine.Verify(p.Graph, p.Forbidden, res.Assignment, p.MaxRounds, p.Capacity); err != nil {
			log.Error("schedule failed verification", zap.Error(err))
			return exitError
		}
		slots := schedule.ByRound(res.Assignment)
		if f.plain {
			if err := schedule.WriteText(stdout, slots); err != nil {
				log.Error("write schedule", zap.Error(err))
				return exitError
			}
		} else {
			fmt.Fprintln(stdout, schedule.Render(slots, schedule.DefaultStyle()))
		}
	case engine.StatusInfeasible:
		fmt.Fprintf(stdout, "no schedule exists: %s\n", res.Reason)
		code = exitInfeasible
	default:
		fmt.Fprintf(stdout, "no schedule found: %s\n", res.Reason)
		code = exitInconclusive
	}

	if f.dotPath != "" {
		if err := writeDOT(f.dotPath, p, res.Assignment); err != nil {
			log.Error("write diagram", zap.Error(err))
			return exitError
		}
		log.Info("diagram written", zap.String("path", f.dotPath))
	}

	// 5. Cross-check
	if f.verify {
		v, err := satcheck.Check(ctx, p.Graph, p.Forbidden, p.MaxRounds, p.Capacity)
		if err != nil {
			log.Warn("sat cross-check did not finish", zap.Error(err))
			return code
		}
		log.Info("sat cross-check", zap.Bool("feasible", v.Feasible), zap.String("reason", v.Reason))
		if res.Conclusive() && v.Feasible != res.Solved() {
			log.Error("engine and sat oracle disagree",
				zap.Stringer("status", res.Status),
				zap.Bool("feasible", v.Feasible),
			)
			return exitError
		}
	}
	return code
}

func writeDOT(path string, p *config.Problem, a engine.Assignment) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := schedule.WriteDOT(out, p.Graph, a, p.MaxRounds); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
