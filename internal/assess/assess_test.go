package assess

import (
	"strings"
	"testing"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

func defaultClassifier() *Classifier {
	return NewClassifier(config.Default().Rules)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected reportModel.SeverityLabel
	}{
		{"high phrase", "There is severe damage to the roof", reportModel.SeverityHigh},
		{"high phrase upper case", "WATER LEAKAGE near the skirting", reportModel.SeverityHigh},
		{"high wins over medium", "moderate crack next to critical beam", reportModel.SeverityHigh},
		{"multi word high phrase", "signs of Structural Damage", reportModel.SeverityHigh},
		{"medium phrase", "Moderate crack observed in wall", reportModel.SeverityMedium},
		{"medium only damp", "the basement is damp", reportModel.SeverityMedium},
		{"medium heat loss", "heat loss around window frame", reportModel.SeverityMedium},
		{"no phrases", "All rooms inspected, nothing to report", reportModel.SeverityLow},
		{"empty", "", reportModel.SeverityLow},
		{"substring match", "microcracks visible", reportModel.SeverityMedium},
	}

	c := defaultClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.expected {
				t.Errorf("Classify(%q) = %v; want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestClassify_ConfiguredPhrases(t *testing.T) {
	c := NewClassifier(config.RulesConfig{
		HighPhrases:   []string{"  Mold  ", ""},
		MediumPhrases: []string{"stain"},
	})

	if got := c.Classify("black MOLD in corner"); got != reportModel.SeverityHigh {
		t.Errorf("got %v, want HIGH", got)
	}
	if got := c.Classify("severe stain"); got != reportModel.SeverityMedium {
		t.Errorf("configured sets must replace the defaults, got %v", got)
	}
	if got := c.Classify("clean"); got != reportModel.SeverityLow {
		t.Errorf("empty phrase must not match everything, got %v", got)
	}
}

func TestCheck_Boundary(t *testing.T) {
	checker := NewCompletenessChecker(50)

	tests := []struct {
		name     string
		text     string
		expected reportModel.CompletenessStatus
	}{
		{"49 chars", strings.Repeat("a", 49), reportModel.CompletenessNotAvailable},
		{"50 chars", strings.Repeat("a", 50), reportModel.CompletenessPresent},
		{"padded 49 chars", "   " + strings.Repeat("a", 49) + "\n\n", reportModel.CompletenessNotAvailable},
		{"empty", "", reportModel.CompletenessNotAvailable},
		{"multibyte counted as chars", strings.Repeat("é", 50), reportModel.CompletenessPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Check(tt.text); got != tt.expected {
				t.Errorf("Check(len=%d) = %v; want %v", len(tt.text), got, tt.expected)
			}
		})
	}
}

func TestCombine_NoCrossDocumentMatch(t *testing.T) {
	c := defaultClassifier()
	combined := Combine("pipe shows water", "leakage test passed")
	if got := c.Classify(combined); got != reportModel.SeverityLow {
		t.Errorf("phrase matched across documents: %v", got)
	}
}

func TestSeverityDisplay(t *testing.T) {
	if got := reportModel.SeverityHigh.Display(); got != "HIGH 🔴" {
		t.Errorf("got %q", got)
	}
	if got := reportModel.SeverityMedium.Display(); got != "MEDIUM 🟠" {
		t.Errorf("got %q", got)
	}
	if got := reportModel.SeverityLow.Display(); got != "LOW 🟢" {
		t.Errorf("got %q", got)
	}
	if got := reportModel.CompletenessNotAvailable.Display(); got != "Not Available" {
		t.Errorf("got %q", got)
	}
}
