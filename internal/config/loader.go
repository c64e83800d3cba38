package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenarios reads a YAML case file, fills defaults and validates every case.
func LoadScenarios(path string) ([]Scenario, error) {
	var sf ScenarioFile
	if err := loadYAML(path, &sf); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return prepare(sf.Cases)
}

func prepare(cases []Scenario) ([]Scenario, error) {
	for i := range cases {
		cases[i].ApplyDefaults()
		if err := cases[i].Validate(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
	}
	return cases, nil
}
