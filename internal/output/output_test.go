package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"priorank/internal/engine"
)

func TestJSONTo(t *testing.T) {
	keywords := []engine.Keyword{
		{Word: "message", Score: 5},
		{Word: "just", Score: 4},
	}

	var buf bytes.Buffer
	if err := JSONTo(&buf, keywords); err != nil {
		t.Fatalf("JSONTo() error = %v", err)
	}

	var decoded []engine.Keyword
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Word != "message" || decoded[0].Score != 5 {
		t.Errorf("decoded = %v, want original keywords back", decoded)
	}
}

func TestTableTo(t *testing.T) {
	keywords := []engine.Keyword{
		{Word: "message", Score: 5},
	}

	var buf bytes.Buffer
	if err := TableTo(&buf, keywords); err != nil {
		t.Fatalf("TableTo() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "message") || !strings.Contains(got, "5") {
		t.Errorf("table output missing keyword row:\n%s", got)
	}
}

func TestTableTo_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, []engine.Keyword{}); err != nil {
		t.Fatalf("TableTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No keywords tracked") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestTableTo_UnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, 42); err == nil {
		t.Error("TableTo() expected error for unsupported type")
	}
}

func TestOutput_UnknownFormat(t *testing.T) {
	if err := Output("yaml", []engine.Keyword{}); err == nil {
		t.Error("Output() expected error for unknown format")
	}
}
