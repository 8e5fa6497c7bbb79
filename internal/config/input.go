package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenario inputs from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (domain.ScenarioInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	inputs, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return inputs, nil
}

// Parse decodes a flat field: value mapping. Blank values are dropped.
func (ip *InputParser) Parse(data []byte) (domain.ScenarioInputs, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	inputs := make(domain.ScenarioInputs, len(raw))
	for k, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		inputs[domain.Field(strings.TrimSpace(k))] = v
	}
	return inputs, nil
}

// Marshal encodes the populated fields as YAML, sorted by field name.
func (ip *InputParser) Marshal(inputs domain.ScenarioInputs) ([]byte, error) {
	raw := make(map[string]string, len(inputs))
	for _, k := range inputs.Keys() {
		raw[string(k)] = inputs[k]
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}

// SaveToFile writes scenario inputs to filename as YAML
func (ip *InputParser) SaveToFile(filename string, inputs domain.ScenarioInputs) error {
	data, err := ip.Marshal(inputs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// Validate checks stored values against the field catalogue. It returns
// warnings only: a partially filled record is always acceptable.
func (ip *InputParser) Validate(inputs domain.ScenarioInputs) []string {
	var warnings []string
	for _, k := range inputs.Keys() {
		spec, ok := domain.LookupField(k)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown field %q", k))
			continue
		}
		if msg := validateValue(spec, inputs[k]); msg != "" {
			warnings = append(warnings, fmt.Sprintf("%s: %s", k, msg))
		}
	}

	total := decimal.Zero
	allocated := false
	for _, f := range domain.Funds {
		if d, err := decimal.NewFromString(inputs.Get(domain.AllocationField(f))); err == nil {
			total = total.Add(d)
			allocated = true
		}
	}
	if allocated && !total.Equal(decimal.NewFromInt(100)) {
		warnings = append(warnings, fmt.Sprintf("fund allocations total %s%%, expected 100%%", total))
	}
	return warnings
}

func validateValue(spec domain.FieldSpec, v string) string {
	switch spec.Type {
	case domain.TypeDate:
		if _, ok := dateutil.ParseISO(v); !ok {
			return fmt.Sprintf("%q is not a YYYY-MM-DD date", v)
		}
	case domain.TypeMoney, domain.TypePercent, domain.TypeHours:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Sprintf("%q is not a number", v)
		}
		if d.IsNegative() {
			return fmt.Sprintf("%q must not be negative", v)
		}
		if spec.Type == domain.TypePercent && d.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Sprintf("%q exceeds 100%%", v)
		}
	case domain.TypeSelect:
		allowed := selectValues(spec.Field)
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return fmt.Sprintf("%q is not one of %s", v, strings.Join(allowed, ", "))
	}
	return ""
}

func selectValues(f domain.Field) []string {
	switch f {
	case domain.FieldRetirementSystem:
		return domain.RetirementSystems
	case domain.FieldSpecialProvision:
		return domain.SpecialProvisions
	default:
		return domain.SurvivorElections
	}
}
