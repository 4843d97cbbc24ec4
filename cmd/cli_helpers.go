package cmd

import (
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printYAML writes v to stdout as YAML.
func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
