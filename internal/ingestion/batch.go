package ingestion

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rcastillo/pliego-compliance/internal/compliance"
	"github.com/rcastillo/pliego-compliance/internal/types"
)

// BatchResult pairs the per-record verdicts with the derived statistics.
// This pair is the engine's entire output shape.
type BatchResult struct {
	Verdicts   []types.RecordVerdict `json:"verdicts"`
	Statistics types.BatchStatistics `json:"statistics"`
}

// EvaluateBatch evaluates every record against the rule set with up to
// workers goroutines. Evaluation is pure, so the parallel result is
// identical to a sequential loop; verdicts keep the input order. workers
// below 2 degrades to sequential.
func EvaluateBatch(ctx context.Context, eval *compliance.Evaluator, rules *types.Rules, records []types.EquipmentRecord, workers int) (*BatchResult, error) {
	if eval == nil {
		return nil, fmt.Errorf("evaluator must not be nil")
	}
	if rules == nil {
		return nil, fmt.Errorf("rules must not be nil")
	}

	verdicts := make([]types.RecordVerdict, len(records))

	if workers < 2 {
		for i := range records {
			v, err := eval.Evaluate(rules, &records[i])
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate record %d: %w", i, err)
			}
			verdicts[i] = *v
		}
	} else {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range records {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := eval.Evaluate(rules, &records[i])
				if err != nil {
					return fmt.Errorf("failed to evaluate record %d: %w", i, err)
				}
				verdicts[i] = *v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &BatchResult{
		Verdicts:   verdicts,
		Statistics: compliance.Aggregate(verdicts),
	}, nil
}
