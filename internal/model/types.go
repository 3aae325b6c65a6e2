// Package model defines the prize pool data and its on-disk formats.
package model

// Format names an import/export representation of a prize pool.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatJSON, FormatText, FormatYAML:
		return Format(s), true
	}
	return "", false
}

// defaultPrizes is installed on first run, when the pool loads empty.
var defaultPrizes = []string{
	"一等奖：智能手机",
	"二等奖：平板电脑",
	"三等奖：无线耳机",
	"四等奖：充电宝",
	"五等奖：精美礼品",
	"参与奖：谢谢参与",
}

// DefaultPrizes returns a fresh copy of the first-run prize list.
func DefaultPrizes() []string {
	out := make([]string, len(defaultPrizes))
	copy(out, defaultPrizes)
	return out
}
