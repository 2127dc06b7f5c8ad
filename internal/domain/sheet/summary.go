package sheet

// Summary is the aggregate outcome of one sheet ingestion. Row failures are
// counted here instead of aborting the batch, so the uploader always gets a
// full picture of what landed.
type Summary struct {
	Total              int      `json:"total"`
	Success            int      `json:"success"`
	Failed             int      `json:"failed"`
	SkippedIdentifiers []string `json:"skippedIdentifiers"`
}

func (s *Summary) RecordSuccess() {
	s.Total++
	s.Success++
}

func (s *Summary) RecordFailure(identifier string) {
	s.Total++
	s.Failed++
	if identifier != "" {
		s.SkippedIdentifiers = append(s.SkippedIdentifiers, identifier)
	}
}
