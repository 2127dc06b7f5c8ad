package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFieldHeaderAliases(t *testing.T) {
	headers := []string{"FHR_ID", "fhr id", "FHRID", " Fhr_Id "}
	for _, header := range headers {
		row := Row{header: "FHR123"}
		value, ok := ResolveField(row, "FHR_ID")
		assert.True(t, ok, "header %q should resolve", header)
		assert.Equal(t, "FHR123", value)
	}
}

func TestResolveFieldCandidateOrder(t *testing.T) {
	row := Row{"CasperFHRID": "FHR1", "FHRID": "FHR2"}
	value, ok := ResolveField(row, "CasperFHRID", "FHRID")
	assert.True(t, ok)
	assert.Equal(t, "FHR1", value)
}

func TestResolveFieldMissing(t *testing.T) {
	row := Row{"Name": "Asha"}
	_, ok := ResolveField(row, "FHR_ID")
	assert.False(t, ok)
}

func TestTextFieldTrims(t *testing.T) {
	row := Row{"Hub Name": "  Koramangala  "}
	assert.Equal(t, "Koramangala", TextField(row, "HubName", "Hub Name"))
	assert.Equal(t, "", TextField(row, "Missing"))
}

func TestNumberFieldCoercion(t *testing.T) {
	row := Row{"DEL": " 42 ", "PICK": "abc", "OFD": ""}
	assert.Equal(t, 42.0, NumberField(row, "DEL"))
	assert.Equal(t, 0.0, NumberField(row, "PICK"))
	assert.Equal(t, 0.0, NumberField(row, "OFD"))
	assert.Equal(t, 0.0, NumberField(row, "Missing"))
}

func TestOptionalNumberField(t *testing.T) {
	row := Row{"Gross_Earnings": "1800.50", "Total_Deductions": "n/a"}

	value, ok := OptionalNumberField(row, "Gross_Earnings")
	assert.True(t, ok)
	assert.Equal(t, 1800.50, value)

	_, ok = OptionalNumberField(row, "Total_Deductions")
	assert.False(t, ok)

	_, ok = OptionalNumberField(row, "Missing")
	assert.False(t, ok)
}

func TestSummaryCounters(t *testing.T) {
	var summary Summary
	summary.RecordSuccess()
	summary.RecordSuccess()
	summary.RecordFailure("FHR9")
	summary.RecordFailure("")

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, []string{"FHR9"}, summary.SkippedIdentifiers)
}
