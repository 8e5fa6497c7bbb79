package output

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// JSONFormatter emits the whole preview as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(p *domain.Preview) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
