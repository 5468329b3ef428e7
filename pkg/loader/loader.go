package loader

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/arthur-debert/docprint/pkg/docnode"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/logging"
	"gopkg.in/yaml.v3"
)

// StdinName is the source name used for documents read from standard input
const StdinName = "-"

// LoadFile reads and decodes the document at path. With FormatAuto the
// format comes from the file extension, falling back to the content.
func LoadFile(path string, format Format) ([]docnode.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrFileNotFound, "input file not found").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read input file").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = formatForPath(path)
	}
	return DecodeBytes(data, format, path)
}

// Decode reads the whole of r and decodes it. source names the input in
// error details and logs.
func Decode(r io.Reader, format Format, source string) ([]docnode.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read input").
			WithDetail("source", source)
	}
	return DecodeBytes(data, format, source)
}

// DecodeBytes decodes a list of documentation nodes. A blank document
// decodes to no nodes.
func DecodeBytes(data []byte, format Format, source string) ([]docnode.Node, error) {
	logger := logging.GetLogger("loader")

	if format == FormatAuto {
		format = sniffFormat(data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug().Str("source", source).Msg("Empty input document")
		return nil, nil
	}

	var wire []wireNode
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, decodeError(err, format, source)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return nil, decodeError(err, format, source)
		}
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unsupported input format: %s", format).
			WithDetail("source", source)
	}

	c := &converter{source: source}
	nodes, err := c.nodes(wire, "nodes")
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", source).
		Str("format", format.String()).
		Int("nodes", len(nodes)).
		Msg("Decoded documentation nodes")

	return nodes, nil
}

func decodeError(err error, format Format, source string) error {
	return errors.Wrapf(err, errors.ErrDecode, "failed to decode %s document", format).
		WithDetail("source", source)
}
