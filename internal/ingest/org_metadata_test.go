package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCallID(t *testing.T) {
	id, ok := ExtractCallID("mehmet_kaya_destek_5301234567_20250724_550e8400-e29b-41d4-a716-446655440000_analysis.json")
	assert.True(t, ok)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id)

	_, ok = ExtractCallID("notes_20250724_analysis.json")
	assert.False(t, ok)

	// Uppercase hex is not the pipeline's format.
	_, ok = ExtractCallID("550E8400-E29B-41D4-A716-446655440000_analysis.json")
	assert.False(t, ok)
}

func TestParseOrganizationMetadata(t *testing.T) {
	raw := "org_id=301271899 org_tel='5302392138' marka='NUR TİCARET' sektor='Elektrik - Elektronik' sirket_tipi='Şahıs' devices=[] services=[] kiva=[]"

	meta := ParseOrganizationMetadata(raw)
	assert.Equal(t, "301271899", meta.ID)
	assert.Equal(t, "NUR TİCARET", meta.Name)
	assert.Equal(t, "Şahıs", meta.Type)
	assert.Equal(t, "Elektrik - Elektronik", meta.Industry)
	assert.Equal(t, "5302392138", meta.Phone)
	assert.False(t, meta.Empty())
}

func TestParseOrganizationMetadataPartial(t *testing.T) {
	meta := ParseOrganizationMetadata("org_id=42 sirket_tipi='Limited'")
	assert.Equal(t, "42", meta.ID)
	assert.Equal(t, "Limited", meta.Type)
	assert.Empty(t, meta.Name)
	assert.Empty(t, meta.Industry)
	assert.Empty(t, meta.Phone)
	assert.False(t, meta.Empty())
}

func TestParseOrganizationMetadataEmpty(t *testing.T) {
	assert.True(t, ParseOrganizationMetadata("").Empty())
	assert.True(t, ParseOrganizationMetadata("devices=[] services=[]").Empty())

	// Empty quoted captures count as no data.
	meta := ParseOrganizationMetadata("org_tel='' marka='' sektor='' sirket_tipi=''")
	assert.True(t, meta.Empty())
}
