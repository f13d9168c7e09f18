package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goXRPLhash/internal/hashes"
	"github.com/LeJamon/goXRPLhash/internal/log"
)

var (
	ledgerVerify  bool
	ledgerWorkers int
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger <file>...",
	Short: "Hash ledger JSON files",
	Long: `Compute the hash of each ledger in the given JSON files.

Each file holds a ledger as returned by the ledger API, either bare, wrapped
in {"ledger": ...} or as a full {"result": {"ledger": ...}} response. With
--verify the transaction and state trees are rebuilt from the expanded
ledger contents and must match the header. When the file carries a
ledger_hash it must match the computed hash.

Examples:
    xrplhash ledger ledger_38129.json
    xrplhash ledger --verify --workers 8 dumps/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLedger,
}

func init() {
	ledgerCmd.Flags().BoolVar(&ledgerVerify, "verify", false, "recompute tree hashes from the ledger contents")
	ledgerCmd.Flags().IntVar(&ledgerWorkers, "workers", 0, "files hashed concurrently (default from config)")
	rootCmd.AddCommand(ledgerCmd)
}

type ledgerResult struct {
	index uint32
	hash  string
}

func runLedger(cmd *cobra.Command, files []string) error {
	opts := hashes.Options{ComputeTreeHashes: ledgerVerify || cfg.ComputeTreeHashes}
	workers := cfg.Workers
	if ledgerWorkers > 0 {
		workers = ledgerWorkers
	}

	results := make([]ledgerResult, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, file := range files {
		g.Go(func() error {
			res, err := hashLedgerFile(ctx, file, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		fmt.Fprintf(out, "%s\t%d\t%s\n", files[i], res.index, res.hash)
	}
	return nil
}

func hashLedgerFile(ctx context.Context, file string, opts hashes.Options) (ledgerResult, error) {
	if err := ctx.Err(); err != nil {
		return ledgerResult{}, err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return ledgerResult{}, err
	}
	l, err := hashes.ParseLedger(data)
	if err != nil {
		return ledgerResult{}, err
	}
	hash, err := hashes.HashLedger(l, opts)
	if err != nil {
		return ledgerResult{}, err
	}
	if l.LedgerHash != "" && !strings.EqualFold(l.LedgerHash, hash) {
		return ledgerResult{}, &hashes.HashMismatchError{Field: "ledger_hash", Expected: l.LedgerHash, Actual: hash}
	}
	log.Info("hashed ledger", "file", file, "ledger_index", l.LedgerIndex, "hash", hash)
	return ledgerResult{index: l.LedgerIndex, hash: hash}, nil
}
