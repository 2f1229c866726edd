package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "fingerprint",
		Short:       "Print word-list size and fingerprint",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{needsDictionary: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Words: %d\nFingerprint: %s\n", appCtx.Dictionary.Len(), appCtx.Fingerprint)
			return nil
		},
	}
}
