package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArray = `[
  {"company": "Alpha Tecnologia", "name": "Maria", "email": "maria@alpha.com", "phone": "(71) 99999-0001"},
  {"company": "Beta Indústrias", "name": "", "email": "", "phone": ""}
]`

func TestExtractRecordsPlainArray(t *testing.T) {
	records, err := ExtractRecords(sampleArray)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha Tecnologia", records[0].Company)
	assert.Equal(t, "maria@alpha.com", records[0].Email)
}

func TestExtractRecordsFencedEqualsUnwrapped(t *testing.T) {
	fenced := "```json\n" + sampleArray + "\n```"
	chatty := "Aqui estão as empresas encontradas:\n" + sampleArray + "\nEspero que ajude!"

	plain, err := ExtractRecords(sampleArray)
	require.NoError(t, err)

	got, err := ExtractRecords(fenced)
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	got, err = ExtractRecords(chatty)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestExtractRecordsMalformed(t *testing.T) {
	_, err := ExtractRecords("não consegui encontrar empresas")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = ExtractRecords(`[{"company": "Alpha"`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractRecordsEmptyArray(t *testing.T) {
	_, err := ExtractRecords("[]")
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestExtractRecordsIgnoresUnknownFields(t *testing.T) {
	records, err := ExtractRecords(`[{"company": "Alpha", "website": "alpha.com"}]`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alpha", records[0].Company)
}
