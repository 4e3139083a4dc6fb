package main

import (
	"fmt"
	"io"
	"os"
)

// readSource reads the named file, or STDIN for "-".
func readSource(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("missing SOURCE argument")
	}
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}
	return data, nil
}

// writeOutput writes data to the named file, or STDOUT when name is empty.
func writeOutput(name string, data []byte, overwrite bool) error {
	if name == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("unable to write '%s': %w", name, err)
	}
	return f.Close()
}
