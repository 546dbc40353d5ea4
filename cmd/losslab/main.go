// Package main provides the losslab CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/losslab-ml/losslab/internal/config"
	"github.com/losslab-ml/losslab/internal/dataset"
	"github.com/losslab-ml/losslab/internal/landscape"
	"github.com/losslab-ml/losslab/internal/nn"
	"github.com/losslab-ml/losslab/internal/optim"
	"github.com/losslab-ml/losslab/internal/trainer"
	"github.com/losslab-ml/losslab/internal/viz"
)

const version = "v0.0.1-dev"

func main() {
	cmd, args := splitCommand(os.Args[1:])

	switch cmd {
	case "run":
		runCmd(args)
	case "serve":
		serveCmd(args)
	case "version":
		fmt.Printf("losslab %s\n", version)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

// splitCommand separates the leading subcommand from its arguments.
// No arguments, or a leading flag, selects the default run command;
// anything else (an empty string included) is taken as a command name
// and lands in the dispatch switch.
func splitCommand(args []string) (cmd string, rest []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "run", args
	}
	return args[0], args[1:]
}

func usage() {
	fmt.Println("losslab - per-sample loss landscapes of a two-weight ReLU perceptron")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  run        Train one epoch and export the visualization (default)")
	fmt.Println("  serve      Train one epoch and serve the visualization over HTTP")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Run 'losslab run -h' or 'losslab serve -h' for flags.")
}

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (defaults apply when empty)")
	samples := fs.Int("samples", 0, "Override sample count")
	seed := fs.Int64("seed", 0, "Override PRNG seed")
	optimizer := fs.String("optimizer", "", "Override optimizer (sgd or adam)")
	lr := fs.Float64("lr", 0, "Override learning rate")
	momentum := fs.Float64("momentum", 0, "Override SGD momentum")
	logEvery := fs.Int("log-every", 0, "Log every N steps")
	out := fs.String("out", "", "Override output HTML path")
	jsonOut := fs.String("json", "", "Also write experiment data as JSON to this path")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	cfg.ApplyOverrides(config.Overrides{
		Samples:      *samples,
		Seed:         *seed,
		Optimizer:    *optimizer,
		LearningRate: *lr,
		Momentum:     *momentum,
		LogEvery:     *logEvery,
		Out:          *out,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	r := buildRenderer(cfg)

	if err := viz.WriteHTML(cfg.Out, r); err != nil {
		log.Fatalf("write html: %v", err)
	}
	log.Printf("wrote %s", cfg.Out)

	if *jsonOut != "" {
		if err := viz.WriteJSON(*jsonOut, r); err != nil {
			log.Fatalf("write json: %v", err)
		}
		log.Printf("wrote %s", *jsonOut)
	}
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (defaults apply when empty)")
	samples := fs.Int("samples", 0, "Override sample count")
	seed := fs.Int64("seed", 0, "Override PRNG seed")
	optimizer := fs.String("optimizer", "", "Override optimizer (sgd or adam)")
	lr := fs.Float64("lr", 0, "Override learning rate")
	momentum := fs.Float64("momentum", 0, "Override SGD momentum")
	logEvery := fs.Int("log-every", 0, "Log every N steps")
	addr := fs.String("addr", "", "Override listen address")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	cfg.ApplyOverrides(config.Overrides{
		Samples:      *samples,
		Seed:         *seed,
		Optimizer:    *optimizer,
		LearningRate: *lr,
		Momentum:     *momentum,
		LogEvery:     *logEvery,
		Addr:         *addr,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	srv := viz.NewServer(buildRenderer(cfg))
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// buildRenderer runs the full pipeline: data, landscape, one training
// epoch, renderer.
func buildRenderer(cfg *config.Config) *viz.Renderer {
	data, err := dataset.Generate(dataset.Config{
		Samples:  cfg.Samples,
		Slope:    cfg.Slope,
		NoiseStd: cfg.NoiseStd,
		Seed:     cfg.Seed,
	})
	if err != nil {
		log.Fatalf("generate dataset: %v", err)
	}
	log.Printf("dataset samples=%d slope=%g noise_std=%g seed=%d", data.Len(), cfg.Slope, cfg.NoiseStd, cfg.Seed)

	grid, err := landscape.Build(data, landscape.GridConfig{
		Resolution: cfg.Grid.Resolution,
		Min:        cfg.Grid.Min,
		Max:        cfg.Grid.Max,
	})
	if err != nil {
		log.Fatalf("build landscape: %v", err)
	}
	log.Printf("landscape surfaces=%d resolution=%d range=[%g,%g]", grid.Samples(), cfg.Grid.Resolution, cfg.Grid.Min, cfg.Grid.Max)

	model := nn.NewPerceptron(cfg.InitW1, cfg.InitW2)

	traj, err := trainer.RunEpoch(trainer.RunConfig{
		Model:     model,
		Data:      data,
		Optimizer: newOptimizer(model, cfg),
		LogEvery:  cfg.LogEvery,
	})
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}
	log.Printf("epoch done steps=%d mean_loss=%.6f final_w1=%.4f final_w2=%.4f",
		len(traj.Steps), traj.MeanLoss(), traj.FinalW1, traj.FinalW2)

	r, err := viz.NewRenderer(data, grid, traj, viz.Meta{
		Samples:      data.Len(),
		Seed:         cfg.Seed,
		Slope:        cfg.Slope,
		NoiseStd:     cfg.NoiseStd,
		Resolution:   cfg.Grid.Resolution,
		GridMin:      cfg.Grid.Min,
		GridMax:      cfg.Grid.Max,
		InitW1:       cfg.InitW1,
		InitW2:       cfg.InitW2,
		Optimizer:    cfg.Optimizer,
		LearningRate: cfg.LearningRate,
		Momentum:     cfg.Momentum,
	})
	if err != nil {
		log.Fatalf("build renderer: %v", err)
	}
	return r
}

func newOptimizer(model *nn.Perceptron, cfg *config.Config) optim.Optimizer {
	if cfg.Optimizer == config.OptimizerAdam {
		return optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LearningRate})
	}
	return optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       cfg.LearningRate,
		Momentum: cfg.Momentum,
	})
}
