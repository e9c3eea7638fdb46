package synth

import "strings"

const promptTemplate = `
Generate a professional Detailed Diagnostic Report (DDR).

STRICT:
- No hallucination
- Missing → write Not Available
- Conflict → mention clearly
- Remove duplicates
- Simple client language

FORMAT:

1. Property Issue Summary
2. Area-wise Observations
3. Probable Root Cause
4. Severity Assessment (with reasoning)
5. Recommended Actions
6. Additional Notes
7. Missing or Unclear Information

Inspection Report:
{{inspection}}

Thermal Report:
{{thermal}}
`

// BuildPrompt embeds both texts verbatim. A single pass replacer keeps
// placeholders inside the inspection text from being expanded again.
func BuildPrompt(inspection, thermal string) string {
	r := strings.NewReplacer("{{inspection}}", inspection, "{{thermal}}", thermal)
	return r.Replace(promptTemplate)
}
