package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/dual/daplug-base/encode"
	"github.com/dual/daplug-base/ir"
)

// schemasDir picks the schema directory: flag, then DAPLUG_SCHEMAS, then
// the working directory.
func schemasDir(flag string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv("DAPLUG_SCHEMAS"); v != "" {
		return v
	}
	return "."
}

// encodeOptions returns indented output, colored when out is a terminal
// unless DAPLUG_COLOR overrides.
func encodeOptions(out io.Writer) []encode.EncodeOption {
	opts := []encode.EncodeOption{encode.Indent("  ")}
	switch os.Getenv("DAPLUG_COLOR") {
	case "always":
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	case "never":
	default:
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			opts = append(opts, encode.EncodeColors(encode.NewColors()))
		}
	}
	return opts
}

// readNode loads a JSON or YAML document from path into a node tree.
func readNode(path string) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	var v any
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, &v)
	default:
		err = yaml.Unmarshal(data, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	node, err := ir.FromJSONAny(v)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return node, nil
}
