package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"caesar/internal/domain"
)

// decrypt [text...]: with no text, the story file is decrypted instead.
func decryptCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:         "decrypt [text...]",
		Short:       "Recover plaintext by trying every shift",
		Annotations: map[string]string{needsDictionary: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				story, err := appCtx.Stories.ReadStory(cfg.StoryPath)
				if err != nil {
					return err
				}
				text = story
			}

			w := cmd.OutOrStdout()
			if all {
				cands, err := appCtx.Search.Candidates(cmd.Context(), text)
				if err != nil {
					return err
				}
				for _, c := range cands {
					fmt.Fprintf(w, "%2d  %3d  %s\n", c.Shift, c.Score, c.Text)
				}
				return nil
			}

			_, res, ok, err := appCtx.Messages.Decrypt(cmd.Context(), text)
			if err != nil {
				return err
			}
			printResult(w, res, ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every shift with its score")
	return cmd
}

func printResult(w io.Writer, res domain.DecryptionResult, ok bool) {
	if !ok {
		fmt.Fprintln(w, "no viable decryption")
		return
	}
	fmt.Fprintf(w, "Shift: %d (%d words)\n", res.Shift, res.Score)
	fmt.Fprintf(w, "PlainText Output: %s\n", res.Plaintext)
}
