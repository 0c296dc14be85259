package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"priorank/internal/engine"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []engine.Keyword:
		return keywordsTable(w, v)
	case engine.Keyword:
		return keywordsTable(w, []engine.Keyword{v})
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func keywordsTable(w io.Writer, keywords []engine.Keyword) error {
	if len(keywords) == 0 {
		fmt.Fprintln(w, "No keywords tracked.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("RANK", "KEYWORD", "SCORE")

	for i, kw := range keywords {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			kw.Word,
			strconv.Itoa(kw.Score),
		}); err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}

	return table.Render()
}
