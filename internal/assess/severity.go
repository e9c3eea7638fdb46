package assess

import (
	"strings"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

// Classifier maps text to a severity label by phrase presence.
// HIGH phrases are checked first so they always win over MEDIUM ones.
type Classifier struct {
	high   []string
	medium []string
}

func NewClassifier(cfg config.RulesConfig) *Classifier {
	return &Classifier{
		high:   normalizePhrases(cfg.HighPhrases),
		medium: normalizePhrases(cfg.MediumPhrases),
	}
}

func (c *Classifier) Classify(text string) reportModel.SeverityLabel {
	lowered := strings.ToLower(text)
	if containsAny(lowered, c.high) {
		return reportModel.SeverityHigh
	}
	if containsAny(lowered, c.medium) {
		return reportModel.SeverityMedium
	}
	return reportModel.SeverityLow
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// empty phrases are dropped, an empty phrase would match everything
func normalizePhrases(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
