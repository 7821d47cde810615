package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/golovatskygroup/repsona-mcp/internal/tools"
)

const checkConcurrency = 3

type checkResult struct {
	URI      string `json:"uri"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type checkSummary struct {
	OK        bool          `json:"ok"`
	Resources []checkResult `json:"resources"`
}

// runCheck reads every resource once and writes a JSON summary to w. It
// returns an error when any read failed.
func runCheck(ctx context.Context, gw *tools.Gateway, w io.Writer) error {
	resources := gw.Resources()
	results := make([]checkResult, len(resources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)
	for i, r := range resources {
		g.Go(func() error {
			start := time.Now()
			_, err := gw.ReadResource(gctx, r.URI)
			res := checkResult{URI: r.URI, OK: err == nil, Duration: time.Since(start).Round(time.Millisecond).String()}
			if err != nil {
				res.Error = err.Error()
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	summary := checkSummary{OK: true, Resources: results}
	failed := 0
	for _, r := range results {
		if !r.OK {
			summary.OK = false
			failed++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d resources failed", failed, len(results))
	}
	return nil
}
