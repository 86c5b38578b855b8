package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Alessio99-a/fetchbind/internal/fetch"
	"github.com/Alessio99-a/fetchbind/internal/request"
)

const checkConcurrency = 4

// checkCmd executes every configured request once, concurrently, and reports
// which ones succeed.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Execute all configured requests and report their status",
	RunE:  runCheck,
}

type checkResult struct {
	name string
	err  *fetch.Failure
}

func runCheck(cmd *cobra.Command, args []string) error {
	client, err := request.NewClient[json.RawMessage](cfg.BaseURL, logger)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Requests))
	for name := range cfg.Requests {
		names = append(names, name)
	}
	sort.Strings(names)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(checkConcurrency)

	results := make(chan checkResult, len(names))
	for _, name := range names {
		name := name
		req := cfg.Requests[name]
		g.Go(func() error {
			coord := fetch.New[json.RawMessage](
				client,
				req.Options(),
				fetch.WithParent(ctx),
				fetch.WithLogger(logger.With().Str("request", name).Logger()),
			)
			out := coord.Execute(nil)
			results <- checkResult{name: name, err: out.Err}
			return nil // individual failures don't stop the sweep
		})
	}

	_ = g.Wait()
	close(results)

	failed := 0
	byName := make(map[string]*fetch.Failure, len(names))
	for res := range results {
		byName[res.name] = res.err
	}
	for _, name := range names {
		if err := byName[name]; err != nil {
			failed++
			fmt.Printf("✗ %s: %s\n", name, err.Message)
		} else {
			fmt.Printf("✓ %s\n", name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(names))
	}
	return nil
}
