package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/g-m-twostay/bst-utils/Trees"
)

type demoConfig struct {
	size, max int
	seed      int64
	extra     []int
}

// randomKeys returns n keys in [0, max), duplicates allowed.
func randomKeys(rg *rand.Rand, n, max int) []int {
	ks := make([]int, n)
	for i := range ks {
		ks[i] = rg.Intn(max)
	}
	return ks
}

func demo(w io.Writer, log *slog.Logger, cfg demoConfig) error {
	if cfg.size < 0 {
		return fmt.Errorf("size must not be negative: %d", cfg.size)
	}
	if cfg.max <= 0 {
		return fmt.Errorf("max must be positive: %d", cfg.max)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	log.Debug("generating keys", "size", cfg.size, "max", cfg.max, "seed", cfg.seed)

	keys := randomKeys(rand.New(rand.NewSource(cfg.seed)), cfg.size, cfg.max)
	tree := Trees.Build(keys)
	log.Info("built tree", "keys", len(keys), "size", tree.Size(), "height", tree.Height())

	fmt.Fprintln(w, "Is the tree balanced?", tree.IsBalanced())
	if err := printOrders(w, tree); err != nil {
		return fmt.Errorf("printing built tree: %w", err)
	}

	for _, k := range cfg.extra {
		if !tree.Insert(k) {
			log.Warn("key already in tree", "key", k)
		}
	}
	log.Info("inserted extra keys", "extra", cfg.extra, "height", tree.Height())
	fmt.Fprintln(w, "Is the tree balanced after adding the extra keys?", tree.IsBalanced())

	tree.Rebalance()
	log.Info("rebalanced tree", "size", tree.Size(), "height", tree.Height())
	fmt.Fprintln(w, "Is the tree balanced after rebalancing?", tree.IsBalanced())
	if err := printOrders(w, tree); err != nil {
		return fmt.Errorf("printing rebalanced tree: %w", err)
	}

	fmt.Fprintln(w, "Visualization of the balanced tree:")
	fmt.Fprint(w, prettyPrint(tree))
	return nil
}
