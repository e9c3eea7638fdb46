package assess

import (
	"strings"
	"unicode/utf8"

	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

// CompletenessChecker is a length proxy for "did extraction yield real content".
type CompletenessChecker struct {
	minLength int
}

func NewCompletenessChecker(minLength int) CompletenessChecker {
	return CompletenessChecker{minLength: minLength}
}

func (c CompletenessChecker) Check(text string) reportModel.CompletenessStatus {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < c.minLength {
		return reportModel.CompletenessNotAvailable
	}
	return reportModel.CompletenessPresent
}

// Combine joins both extracted texts for the severity rules. The newline keeps
// a phrase from being matched across the boundary of the two documents.
func Combine(inspection string, thermal string) string {
	return inspection + "\n" + thermal
}
