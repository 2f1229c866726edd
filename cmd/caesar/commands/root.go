package commands

import (
	"github.com/spf13/cobra"

	"caesar/internal/app"
)

// needsDictionary marks commands that require the word list at startup.
const needsDictionary = "needs-dictionary"

var (
	cfg    app.Config
	appCtx *app.Wire

	wordsPath string
	storyPath string
	logLevel  string
	workers   int
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "caesar",
		Short:        "Caesar-cipher encryption and keyless decryption",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("words") {
				c.WordsPath = wordsPath
			}
			if flags.Changed("story") {
				c.StoryPath = storyPath
			}
			if flags.Changed("log-level") {
				c.LogLevel = logLevel
			}
			if flags.Changed("workers") {
				c.Workers = workers
			}
			cfg = c

			log, err := app.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			appCtx = nil
			if cmd.Annotations[needsDictionary] != "true" {
				return nil
			}
			appCtx, err = app.NewWire(cfg, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&wordsPath, "words", "", "word list file (default words.txt, env CAESAR_WORDS)")
	root.PersistentFlags().StringVar(&storyPath, "story", "", "story file to decrypt (default story.txt, env CAESAR_STORY)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env CAESAR_LOG_LEVEL)")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "candidates scored in parallel; 0 uses GOMAXPROCS (env CAESAR_WORKERS)")

	root.AddCommand(encryptCmd(), decryptCmd(), demoCmd(), fingerprintCmd())
	return root
}
