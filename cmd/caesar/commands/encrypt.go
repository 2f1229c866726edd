package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"caesar/internal/protocol/shift"
	"caesar/internal/services/message"
	"caesar/internal/store"
)

// encrypt <shift> <text...>: shift may be any integer; it is taken modulo 26.
func encryptCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "encrypt <shift> <text...>",
		Short: "Encrypt text with a known shift",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("shift %q is not an integer", args[0])
			}
			p, err := message.NewPlaintext(strings.Join(args[1:], " "), shift.Normalize(n))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "PlainText Input: %s\n", p.Text())
			fmt.Fprintf(w, "Cipher Output: %s\n", p.Encrypted())

			if out != "" {
				if err := store.WriteText(out, p.Encrypted(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write the ciphertext to this file")
	return cmd
}
