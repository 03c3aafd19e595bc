package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnyMapsCSV(t *testing.T) {
	csv := "School,First,Last,Email\n" +
		"Ohio State University,John,Smith,js@osu.edu\n" +
		",,,\n" + // fully empty row is skipped
		"Duke University,Mary,Jones,\n"

	rows, err := ReadAnyMaps(strings.NewReader(csv), "upload.csv", 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ohio State University", rows[0]["School"])
	assert.Equal(t, "John", rows[0]["First"])
	assert.Equal(t, "js@osu.edu", rows[0]["Email"])
	assert.Equal(t, "", rows[1]["Email"])
}

func TestReadAnyMapsHeaderRowOffset(t *testing.T) {
	csv := "Exported 2026-08-12\n" +
		"School,First,Last\n" +
		"Boston College,Pat,Riley\n"

	rows, err := ReadAnyMaps(strings.NewReader(csv), "upload.csv", 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Boston College", rows[0]["School"])
}

func TestReadAnyMapsRejectsUnknownExtension(t *testing.T) {
	_, err := ReadAnyMaps(strings.NewReader("x"), "upload.pdf", 1)
	assert.Error(t, err)
}

func TestPickHeaderFillsEmptyCells(t *testing.T) {
	h := pickHeader([][]string{{"School", "", "Last"}}, 1)
	assert.Equal(t, []string{"School", "Column 2", "Last"}, h)
}
