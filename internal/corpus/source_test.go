package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONArray(t *testing.T) {
	in := `[{"id":"1","init_text":"alpha beta"},{"id":"2","init_text":"gamma"}]`

	records, err := Read(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{DocID: "1", Text: "alpha beta"}, records[0])
	assert.Equal(t, Record{DocID: "2", Text: "gamma"}, records[1])
}

func TestReadJSONLines(t *testing.T) {
	in := "{\"_id\":\"1\",\"text\":\"alpha beta\",\"title\":\"Doc One\"}\n" +
		"{\"_id\":\"2\",\"text\":\"gamma\"}\n"

	records, err := Read(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{DocID: "1", Text: "alpha beta", Title: "Doc One"}, records[0])
	assert.Equal(t, Record{DocID: "2", Text: "gamma"}, records[1])
}

func TestReadJSONLinesSkipsBlankLines(t *testing.T) {
	in := "{\"_id\":\"1\",\"text\":\"alpha\"}\n\n   \n{\"_id\":\"2\",\"text\":\"beta\"}\n"

	records, err := Read(strings.NewReader(in))

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadEmptyInput(t *testing.T) {
	records, err := Read(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadWhitespaceOnlyInput(t *testing.T) {
	records, err := Read(strings.NewReader("   \n\n  "))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadMalformedArray(t *testing.T) {
	_, err := Read(strings.NewReader(`[{"id": "1", }]`))

	require.Error(t, err)
}

func TestReadMalformedJSONLLine(t *testing.T) {
	_, err := Read(strings.NewReader(`{"_id": "1", text: "oops"}`))

	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/corpus.json")

	require.Error(t, err)
}
