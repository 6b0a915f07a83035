// Command tune searches creature locomotion parameters with CMA-ES, scoring
// each candidate by headless runs that should keep creatures moving at a
// target speed without losing them to the walls.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/linelife/config"
)

// evalRow is one line of tune_log.csv.
type evalRow struct {
	Eval             int     `csv:"eval"`
	Fitness          float64 `csv:"fitness"`
	DeathRate        float64 `csv:"death_rate"`
	MeanSpeed        float64 `csv:"mean_speed"`
	MoveRate         float64 `csv:"move_rate"`
	ForceScale       float64 `csv:"force_scale"`
	BounceDamping    float64 `csv:"bounce_damping"`
	MomentumHalfLife float64 `csv:"momentum_half_life"`
}

// formatDuration formats a duration as 1h02m03s or 2m03s.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 36000, "Simulation ticks per run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	targetSpeed := flag.Float64("target-speed", 40, "Desired mean creature speed in world units per second")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*configPath, *outputDir, int32(*maxTicks), *seeds, *maxEvals, *population, *targetSpeed); err != nil {
		slog.Error("tune failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, outputDir string, maxTicks int32, numSeeds, maxEvals, popSize int, targetSpeed float64) error {
	if outputDir == "" {
		return fmt.Errorf("-output is required")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	baseCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	params := NewParamVector()
	evalSeeds := make([]int64, numSeeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, maxTicks, evalSeeds, baseCfg, targetSpeed)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))
	if popSize == 0 {
		popSize = 4 + 3*dim/2
	}

	logPath := filepath.Join(outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)
			score := evaluator.Last()
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}

			row := []evalRow{{
				Eval:             evalCount,
				Fitness:          fitness,
				DeathRate:        score.DeathRate,
				MeanSpeed:        score.MeanSpeed,
				MoveRate:         clamped[0],
				ForceScale:       clamped[1],
				BounceDamping:    clamped[2],
				MomentumHalfLife: clamped[3],
			}}
			write := gocsv.MarshalWithoutHeaders
			if evalCount == 1 {
				write = gocsv.Marshal
			}
			if err := write(row, logFile); err != nil {
				slog.Error("failed to write log row", "error", err)
			}

			elapsed := time.Since(startTime)
			remaining := time.Duration(maxEvals-evalCount) * (elapsed / time.Duration(evalCount))
			fmt.Printf("Eval %d/%d: deaths/min=%.3f speed=%.1f fitness=%.4f (best=%.4f) | elapsed: %s, ETA: %s\n",
				evalCount, maxEvals, score.DeathRate, score.MeanSpeed, fitness, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))

			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: maxEvals,
		Concurrent:      0,
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n", dim, popSize, maxEvals)
	fmt.Printf("Seeds per evaluation: %d, ticks per run: %d, target speed: %.1f\n", numSeeds, maxTicks, targetSpeed)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		slog.Info("optimization ended", "reason", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		return fmt.Errorf("no evaluation completed")
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.4f\n\nBest parameters:\n", bestFitness)
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.4f\n", spec.Path, bestParams[i])
	}

	bestCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	params.ApplyToConfig(bestCfg, bestParams)
	configOutPath := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		return err
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	return nil
}
