package cli

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/diogovalentte/tukangkomik/src/util"
)

// writeOutput writes v to w in the format set with --output.
// The YAML output has the same keys, in the same order, as the JSON output.
func writeOutput(w io.Writer, v any) error {
	contextError := "error writing output"

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return util.AddErrorContext(contextError, err)
	}
	if flagOutput == "json" {
		_, err = w.Write(append(data, '\n'))
		if err != nil {
			return util.AddErrorContext(contextError, err)
		}
		return nil
	}

	// JSON is valid YAML, decoding it into a node keeps the key order
	var node yaml.Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return util.AddErrorContext(contextError, err)
	}
	resetStyle(&node)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err = encoder.Encode(&node); err != nil {
		return util.AddErrorContext(contextError, err)
	}

	return encoder.Close()
}

// resetStyle removes the flow and quoting styles of the JSON document so it's written in block style
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
