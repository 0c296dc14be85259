package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"priorank/internal/config"
	"priorank/internal/engine"
	"priorank/internal/output"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive keyword session",
	Long: `Start an interactive session against one keyword engine.

Every line you type is fed as a message and answered with its ranked
keywords. Directives:

  :boost <word>   raise a keyword's priority by one
  :top [n]        show the accumulated score table
  :quit           leave the session`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.EngineConfig())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	prompt := color.New(color.FgCyan, color.Bold).SprintFunc()
	rank := color.New(color.FgGreen).SprintFunc()
	if !isTTY {
		color.NoColor = true
	}

	if isTTY {
		fmt.Printf("priorank %s — feed me text, :quit to leave\n", version)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if isTTY {
			fmt.Print(prompt("> "))
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit, err := runDirective(eng, cfg, line); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			} else if quit {
				return nil
			}
			continue
		}

		if ranked := eng.Feed(line); ranked != "" {
			fmt.Println(rank(ranked))
		}
	}

	return scanner.Err()
}

// runDirective handles a ":" command. The bool result reports whether
// the session should end.
func runDirective(eng *engine.Engine, cfg *config.Config, line string) (bool, error) {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true, nil

	case ":boost":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: :boost <word>")
		}
		for _, word := range fields[1:] {
			if err := eng.PrioritizeKeyword(word); err != nil {
				return false, err
			}
			score, _ := eng.Score(word)
			fmt.Printf("%s -> %d\n", word, score)
		}
		return false, nil

	case ":top":
		limit := 0
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return false, fmt.Errorf("usage: :top [n]")
			}
			limit = n
		}
		return false, output.Output(resolveFormat(cfg), eng.Top(limit))

	default:
		return false, fmt.Errorf("unknown directive %s", fields[0])
	}
}
