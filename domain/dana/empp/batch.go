package empp

import (
	"context"

	"github.com/dana-network/danad/infrastructure/logger"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ParseOpReturns decodes many OP_RETURN script bodies in parallel, running
// at most concurrency decodes at a time. Results are returned in the order
// of scripts. The first script that fails to decode cancels the rest and its
// error is returned.
func ParseOpReturns(ctx context.Context, scripts [][]byte, concurrency int) ([]*ParseResult, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ParseOpReturns")
	defer onEnd()

	if concurrency < 1 {
		return nil, errors.Errorf("concurrency must be at least 1, got %d", concurrency)
	}

	results := make([]*ParseResult, len(scripts))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, script := range scripts {
		if groupCtx.Err() != nil {
			break
		}
		i, script := i, script
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := ParseOpReturn(script)
			if err != nil {
				return errors.Wrapf(err, "script %d", i)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	// The parent context may have been cancelled before any goroutine ran.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debugf("Decoded %d OP_RETURN scripts", len(scripts))
	return results, nil
}
