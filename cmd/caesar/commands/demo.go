package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	demoPhrase = "Random Phrase"
	demoShift  = 2
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "demo",
		Short:       "Encrypt a sample phrase, then decrypt the story file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{needsDictionary: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			p, err := appCtx.Messages.Encrypt(demoPhrase, demoShift)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "PlainText Input: %s\n", p.Text())
			fmt.Fprintf(w, "Cipher Output: %s\n", p.Encrypted())
			fmt.Fprintln(w, "------")

			c, res, ok, err := appCtx.Messages.DecryptStory(cmd.Context(), cfg.StoryPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Cipher Input: %s\n", c.Text())
			printResult(w, res, ok)
			return nil
		},
	}
}
