// Command schema-generator writes the JSON Schema of config.toml for editor
// integration (taplo, VS Code "Even Better TOML").
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/tzclock/config"
)

func main() {
	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	outputDir := "schema"
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputPath := filepath.Join(outputDir, "tzclock.schema.json")
	if err := os.WriteFile(outputPath, append(schemaBytes, '\n'), 0o644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Generated config schema at %s", outputPath)
}
