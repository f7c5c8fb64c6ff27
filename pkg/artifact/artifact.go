package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

const abiField = "abi"

// Layout describes where build artifacts live and where extracted ABIs go.
//
// The compiler writes one artifact per contract under a per-source directory:
//
//	<ArtifactDir>/<name>.sol/<name>.json
//
// and the extracted ABI is written flat into OutputDir:
//
//	<OutputDir>/<name>.json
type Layout struct {
	ArtifactDir string
	OutputDir   string
}

func (l *Layout) ArtifactPath(name string) string {
	return filepath.Join(l.ArtifactDir, fmt.Sprintf("%s.sol", name), fmt.Sprintf("%s.json", name))
}

func (l *Layout) OutputPath(name string) string {
	return filepath.Join(l.OutputDir, fmt.Sprintf("%s.json", name))
}

// ReadAbi loads the artifact at path and returns the raw JSON value stored
// under its "abi" key. The value is returned as found in the file.
func ReadAbi(path string) (json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ArtifactNotFoundError{Path: path, Err: err}
		}
		return nil, &ArtifactParseError{Path: path, Err: err}
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, &ArtifactParseError{Path: path, Err: fmt.Errorf("failed to read artifact: %w", err)}
	}

	return decodeAbi(path, content)
}

func decodeAbi(path string, content []byte) (json.RawMessage, error) {
	// Unmarshal into raw values does not check what is inside them, so the
	// whole document is validated first.
	if !utf8.Valid(content) {
		return nil, &ArtifactParseError{Path: path, Err: fmt.Errorf("artifact is not valid UTF-8")}
	}
	if !json.Valid(content) {
		return nil, &ArtifactParseError{Path: path, Err: fmt.Errorf("artifact is not valid JSON")}
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, &ArtifactParseError{Path: path, Err: err}
	}
	// a literal null decodes into a nil map without error
	if document == nil {
		return nil, &ArtifactParseError{Path: path, Err: fmt.Errorf("top-level value is not a JSON object")}
	}

	abi, ok := document[abiField]
	if !ok {
		return nil, &MissingAbiFieldError{Path: path}
	}
	if len(abi) == 0 {
		abi = json.RawMessage("null")
	}
	return abi, nil
}

// CompactAbi drops insignificant whitespace from abi. The value itself is
// left unchanged.
func CompactAbi(abi json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, abi); err != nil {
		return nil, fmt.Errorf("failed to serialize abi: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAbi writes data to path, creating or truncating the file.
func WriteAbi(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
