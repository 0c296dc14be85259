package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"priorank/internal/config"
	"priorank/internal/engine"
	"priorank/internal/output"
)

var (
	feedBoosts  []string
	feedShowTop bool
)

var feedCmd = &cobra.Command{
	Use:   "feed [text...]",
	Short: "Feed text and print its keywords ranked by priority",
	Long: `Feed text into a keyword engine and print the ranked result.

With arguments, the joined arguments are fed as a single message. Without
arguments, each line read from stdin is fed as a successive message, so
rankings accumulate line over line.

Boosts given with --boost are applied before any text is fed.

Examples:
  priorank feed "this is just a sample message"
  priorank feed --boost message "just a message"
  cat chatlog.txt | priorank feed --top`,
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().StringArrayVar(&feedBoosts, "boost", nil,
		"keyword to prioritize before feeding (repeatable)")
	feedCmd.Flags().BoolVar(&feedShowTop, "top", false,
		"print the accumulated score table after feeding")
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.EngineConfig())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	for _, word := range feedBoosts {
		if err := eng.PrioritizeKeyword(word); err != nil {
			return fmt.Errorf("failed to boost %q: %w", word, err)
		}
	}

	if len(args) > 0 {
		fmt.Println(eng.Feed(strings.Join(args, " ")))
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			fmt.Println(eng.Feed(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	if feedShowTop {
		return output.Output(resolveFormat(cfg), eng.Top(0))
	}
	return nil
}

// resolveFormat picks the output format: the --output flag wins over
// the config file.
func resolveFormat(cfg *config.Config) string {
	if outputFmt != "" {
		return outputFmt
	}
	return cfg.Output.Format
}
