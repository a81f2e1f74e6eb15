package main

import (
	"fmt"
	"os"

	"github.com/Skywalker144/Vortexy/pkg/vortexy"
)

// expandInputs replaces directory arguments with the tables they contain.
// Other arguments are kept as given so missing files are reported per file.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		listed, err := vortexy.ListInputs(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", arg, err)
		}
		inputs = append(inputs, listed...)
	}
	if len(inputs) == 0 {
		return nil, vortexy.ErrNoInputs
	}
	return inputs, nil
}
