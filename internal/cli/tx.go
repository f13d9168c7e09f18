package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLhash/internal/codec"
	"github.com/LeJamon/goXRPLhash/internal/hashes"
)

var txCmd = &cobra.Command{
	Use:   "tx <blob|file>",
	Short: "Compute transaction ID and signing hash",
	Long: `Compute the transaction ID and the signing hash of a transaction.

The argument is a hex transaction blob, or a file holding either a blob or
a transaction JSON object. Unsigned transactions have no ID; only their
signing hash is printed.

Examples:
    xrplhash tx 1200002280000000240000000161400000000000F424068400000000000000C
    xrplhash tx payment.json`,
	Args: cobra.ExactArgs(1),
	RunE: runTx,
}

func init() {
	rootCmd.AddCommand(txCmd)
}

// readTxBlob resolves the argument to a hex transaction blob.
func readTxBlob(arg string) (string, error) {
	input := arg
	if data, err := os.ReadFile(arg); err == nil {
		input = string(data)
	}
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, "{") {
		return strings.ToUpper(input), nil
	}
	var tx map[string]any
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	if err := dec.Decode(&tx); err != nil {
		return "", fmt.Errorf("%w: %v", hashes.ErrInvalidInput, err)
	}
	if inner, ok := tx["tx_json"].(map[string]any); ok {
		tx = inner
	}
	return codec.Default().Encode(tx)
}

func runTx(cmd *cobra.Command, args []string) error {
	blob, err := readTxBlob(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	id, err := hashes.HashSignedTxBlob(blob)
	switch {
	case err == nil:
		fmt.Fprintf(out, "id:           %s\n", id)
	case errors.Is(err, hashes.ErrUnsignedTransaction):
		fmt.Fprintln(out, "id:           (unsigned)")
	default:
		return err
	}

	signing, err := hashes.HashTx(blob)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "signing hash: %s\n", signing)
	return nil
}
