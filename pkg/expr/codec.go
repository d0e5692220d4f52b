package expr

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal renders the tree in its exported text form. Every parameter and
// variant field round-trips; sampler state does not exist until Noise is
// called, so nothing else needs to.
func Marshal(e *Expr) ([]byte, error) {
	return yaml.Marshal(e)
}

// Unmarshal decodes an exported tree.
func Unmarshal(data []byte) (*Expr, error) {
	e := &Expr{}
	if err := yaml.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decoding expression tree: %w", err)
	}
	return e, nil
}

// Write encodes the tree to w.
func Write(w io.Writer, e *Expr) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encoding expression tree: %w", err)
	}
	return enc.Close()
}

// Load reads an exported tree from a file.
func Load(path string) (*Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading expression tree: %w", err)
	}
	return Unmarshal(data)
}

// Save writes the tree's exported form to a file.
func Save(path string, e *Expr) error {
	data, err := Marshal(e)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing expression tree: %w", err)
	}
	return nil
}
