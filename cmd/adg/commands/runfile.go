package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunFile is the YAML run description accepted by --config.
type RunFile struct {
	Theory          string `yaml:"theory"`
	Order           int    `yaml:"order"`
	Ranks           []int  `yaml:"ranks"`
	ObservableRanks []int  `yaml:"observable_ranks"`
	CanonicalOnly   bool   `yaml:"canonical_only"`
	Workers         int    `yaml:"workers"`
	Format          string `yaml:"format"`
}

// loadRunFile decodes path, rejecting unknown keys.
func loadRunFile(path string) (RunFile, error) {
	var rf RunFile
	f, err := os.Open(path)
	if err != nil {
		return rf, fmt.Errorf("open run file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		return rf, fmt.Errorf("decode run file %s: %w", path, err)
	}

	return rf, nil
}
