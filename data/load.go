package data

import (
	"encoding/json"
	"fmt"
)

// Load decodes a JSON file from the embedded data into a T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := read(filename)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("data: failed to parse %s: %w", filename, err)
	}
	return result, nil
}

// LoadText returns an embedded text file, such as a map.
func LoadText(filename string) (string, error) {
	content, err := read(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func read(filename string) ([]byte, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("data: no embedded file %s: %w", filename, err)
	}
	return content, nil
}
