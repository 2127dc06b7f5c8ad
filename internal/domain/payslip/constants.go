package payslip

// Failure reason tags appended to skipped identifiers in upload summaries.
// Only the not-found tag is parenthesized; the admin console matches on
// these exact strings.
const (
	TagNotFound        = "(Not Found)"
	TagDuplicateEntry  = "Duplicate Entry"
	TagGenerationError = "Generation Error"
)
