package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/transaction"
)

// loadOperations reads a batch file, dispatching on extension between the
// two encodings a batch is authored in.
func loadOperations(path string) ([]transaction.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var ops []transaction.Operation
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &ops)
	} else {
		err = yaml.Unmarshal(data, &ops)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ops, nil
}

// loadSelector reads a single selector file (the `locate` command's input).
func loadSelector(path string) (*transaction.SelectorDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var sel transaction.SelectorDTO
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &sel)
	} else {
		err = yaml.Unmarshal(data, &sel)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &sel, nil
}

// readContentArg resolves a "-" stdin sentinel the way the teacher's
// edit.go does for --set-body/--append-body.
func readContentArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
