package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLhash/internal/codec"
	"github.com/LeJamon/goXRPLhash/internal/crypto"
	"github.com/LeJamon/goXRPLhash/internal/index"
)

var accountCmd = &cobra.Command{
	Use:   "account <public-key>",
	Short: "Derive an account from a public key",
	Long: `Derive the account ID, classic address and AccountRoot index of the
account controlled by a 33 byte secp256k1 or Ed25519 public key given in hex.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccount,
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func runAccount(cmd *cobra.Command, args []string) error {
	pub, err := crypto.ParsePublicKey(args[0])
	if err != nil {
		return err
	}
	id := crypto.CalcAccountID(pub)
	address, err := codec.EncodeAccountID(id)
	if err != nil {
		return err
	}
	root, err := index.HashAccountRoot(address)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key type:     %s\n", crypto.PublicKeyType(pub))
	fmt.Fprintf(out, "address:      %s\n", address)
	fmt.Fprintf(out, "account id:   %s\n", strings.ToUpper(hex.EncodeToString(id[:])))
	fmt.Fprintf(out, "account root: %s\n", root)
	return nil
}
