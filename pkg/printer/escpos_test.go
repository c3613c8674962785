package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentInitializes(t *testing.T) {
	doc := NewDocument(32)
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
}

func TestKeyValueFillsWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Total", "123.50")

	line := doc.Bytes()[2:] // skip init
	require.Equal(t, byte(LF), line[len(line)-1])
	assert.Equal(t, "Total         123.50", string(line[:len(line)-1]))
	assert.Len(t, string(line[:len(line)-1]), 20)
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(24)
	doc.ItemLine(2, "Lager", "130.00")

	line := string(doc.Bytes()[2:])
	assert.Equal(t, "2x Lager          130.00\n", line)
}

func TestColumns(t *testing.T) {
	doc := NewDocument(30)
	doc.Columns([]string{"Beer", "2", "1"})

	line := string(doc.Bytes()[2:])
	// Three slots of ten: first left-aligned, the rest right-aligned.
	assert.Equal(t, "Beer               2         1\n", line)
}

func TestColumnsTruncatesOverlongCells(t *testing.T) {
	doc := NewDocument(12)
	doc.Columns([]string{"Extraordinarily Long Name", "7"})

	line := string(doc.Bytes()[2:])
	assert.Equal(t, "Extrao     7\n", line)
}

func TestColumnsTruncatesOnRuneBoundaries(t *testing.T) {
	doc := NewDocument(12)
	doc.Columns([]string{"Smörgåstårta", "7"})

	line := string(doc.Bytes()[2:])
	assert.Equal(t, "Smörgå     7\n", line)
}

func TestColumnsPadsMultibyteCellsByRuneCount(t *testing.T) {
	doc := NewDocument(12)
	doc.Columns([]string{"Öl", "2"})

	line := string(doc.Bytes()[2:])
	assert.Equal(t, "Öl         2\n", line)
}

func TestSeparator(t *testing.T) {
	doc := NewDocument(8)
	doc.Separator('-')
	assert.Equal(t, "--------\n", string(doc.Bytes()[2:]))
}

func TestPartialCut(t *testing.T) {
	doc := NewDocument(32)
	doc.PartialCut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x01}))
}

func TestBoldToggles(t *testing.T) {
	doc := NewDocument(32)
	doc.SetBold(true).Text("TOTAL").SetBold(false)

	out := doc.Bytes()
	assert.True(t, bytes.Contains(out, []byte{ESC, 'E', 1}))
	assert.True(t, bytes.Contains(out, []byte{ESC, 'E', 0}))
}

func TestCapturePrinterCopiesJobs(t *testing.T) {
	p := NewCapturePrinter()
	data := []byte("job")
	require.NoError(t, p.Print(data))
	data[0] = 'x'

	require.Len(t, p.Jobs, 1)
	assert.Equal(t, []byte("job"), p.Jobs[0])
	assert.True(t, p.IsConnected())
}
