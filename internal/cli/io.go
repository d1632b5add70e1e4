package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinge/pkg/color"
	"github.com/jmylchreest/tinge/pkg/scheme"
)

// parseColorArg turns a command-line color argument into a Color: a
// decimal 8-bit palette index, a JSON component table, or a hex string.
func parseColorArg(arg string) (color.Color, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		return color.Parse(idx)
	}
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		var table map[string]any
		if err := json.Unmarshal([]byte(arg), &table); err != nil {
			return nil, fmt.Errorf("%w: %q is not a component table", color.ErrInvalidColorFormat, arg)
		}
		return color.Parse(table)
	}
	return color.Parse(arg)
}

// loadScheme reads a colorscheme JSON document.
func loadScheme(path string) (*scheme.Colorscheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}
	var cs scheme.Colorscheme
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parsing scheme %s: %w", path, err)
	}
	return &cs, nil
}

// emitScheme writes a scheme as indented JSON to path, or to the command's
// stdout when path is empty or "-".
func emitScheme(cmd *cobra.Command, cs *scheme.Colorscheme, path string) error {
	data, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scheme: %w", err)
	}
	data = append(data, '\n')
	if path == "" || path == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scheme: %w", err)
	}
	return nil
}

// isSchemePath reports whether arg names an existing file. Such arguments
// are treated as scheme documents, anything else as a single color.
func isSchemePath(arg string) bool {
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

// formatColor renders a color for plain output.
func formatColor(c color.Color) string {
	switch v := c.(type) {
	case color.Hex:
		return string(v)
	case color.EightBit:
		return strconv.Itoa(int(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
