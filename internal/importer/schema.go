package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PortfolioFile is the top-level structure of a portfolio import file.
type PortfolioFile struct {
	Items []ItemImport `json:"items" yaml:"items"`
}

// ItemImport defines one candidate project in the import file. Cost and
// benefit are pointers so that a missing value can be told apart from zero.
type ItemImport struct {
	Name        string   `json:"name" yaml:"name"`
	Cost        *float64 `json:"cost" yaml:"cost"`
	Benefit     *float64 `json:"benefit" yaml:"benefit"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// LoadPortfolioFile reads a portfolio file. Files ending in .json are parsed
// as JSON; anything else is parsed as YAML.
func LoadPortfolioFile(path string) (*PortfolioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

func ParseJSON(data []byte) (*PortfolioFile, error) {
	var pf PortfolioFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing portfolio file: %w", err)
	}
	return &pf, nil
}

func ParseYAML(data []byte) (*PortfolioFile, error) {
	var pf PortfolioFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing portfolio file: %w", err)
	}
	return &pf, nil
}
