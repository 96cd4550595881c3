package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/sikshya/internal/catalog"
	"github.com/abhisek/sikshya/internal/ledger"
)

// LoadDashboard fetches the catalog and the learner's ledger concurrently
// and joins the results. Either failure is a joint failure: the caller
// never aggregates over a half-available dataset.
func (c *Client) LoadDashboard(ctx context.Context, userID string) (*catalog.Catalog, ledger.Ledger, error) {
	var (
		cat *catalog.Catalog
		led ledger.Ledger
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cat, err = c.Concepts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		led, err = c.Progress(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return cat, led, nil
}
