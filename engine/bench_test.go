package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/boolnet/config"
	"github.com/katalvlaran/boolnet/engine"
)

func benchmarkRun(b *testing.B, strategy config.Strategy, workers int) {
	def := ring(b, 12)
	cfg := config.Default()
	cfg.Strategy = strategy
	cfg.Workers = workers
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Run(context.Background(), def, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Trajectory(b *testing.B)  { benchmarkRun(b, config.StrategyTrajectory, 1) }
func BenchmarkRun_Trajectory4(b *testing.B) { benchmarkRun(b, config.StrategyTrajectory, 4) }
func BenchmarkRun_Graph(b *testing.B)       { benchmarkRun(b, config.StrategyGraph, 1) }
