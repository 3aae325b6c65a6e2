package pool

import (
	"fmt"

	"github.com/jacksmith/pz/internal/model"
)

// ExportJSON renders the pool as a JSON array accepted by ImportJSON.
func (p *Pool) ExportJSON() ([]byte, error) {
	return model.EncodeJSON(p.Entries())
}

// ExportText renders the pool in the prize file format.
func (p *Pool) ExportText() string {
	return string(model.EncodeLines(p.Entries()))
}

// ExportYAML renders the pool as a YAML document.
func (p *Pool) ExportYAML() ([]byte, error) {
	return model.EncodeYAML(p.Entries())
}

// Export renders the pool in the given format.
func (p *Pool) Export(f model.Format) ([]byte, error) {
	switch f {
	case model.FormatJSON:
		return p.ExportJSON()
	case model.FormatText:
		text := p.ExportText()
		if text != "" {
			text += "\n"
		}
		return []byte(text), nil
	case model.FormatYAML:
		return p.ExportYAML()
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// Import replaces the pool from data in the given format.
// JSON input that is not an array of strings returns an error and leaves
// the pool untouched. YAML is export-only.
func (p *Pool) Import(f model.Format, data []byte) (int, error) {
	switch f {
	case model.FormatJSON:
		return p.importJSON(string(data))
	case model.FormatText:
		return p.ImportText(string(data)), nil
	}
	return 0, fmt.Errorf("cannot import %s", f)
}
