package impex

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

// record is one line of an input file. Line is 1-based.
type record struct {
	Line   int
	Fields []string
}

var (
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// readRecords picks a reader by file extension and returns all records.
func readRecords(fileName string, data []byte) ([]record, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		return readDelimited(data)
	case ".xlsx":
		return readWorkbook(data)
	case ".xls":
		// Files saved as .xls are often CSV or XLSX in disguise.
		switch {
		case bytes.HasPrefix(data, zipMagic):
			return readWorkbook(data)
		case bytes.HasPrefix(data, ole2Magic):
			return nil, domain.NewImportError("legacy binary .xls is not supported, save as .xlsx or .csv")
		default:
			return readDelimited(data)
		}
	default:
		return nil, domain.NewImportError("unsupported file type")
	}
}

// decodeText strips a UTF-8 BOM and converts Latin-1 input to UTF-8.
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode latin-1: %w", err)
	}
	return out, nil
}

// detectDelimiter inspects the first non-empty line. Comma wins unless
// semicolons or tabs are more frequent.
func detectDelimiter(text []byte) rune {
	var first string
	for _, line := range strings.Split(string(text), "\n") {
		if strings.TrimSpace(line) != "" {
			first = line
			break
		}
	}

	delim, best := ',', strings.Count(first, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(first, string(d)); n > best {
			delim, best = d, n
		}
	}
	return delim
}

func readDelimited(data []byte) ([]record, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, domain.NewImportError(err.Error())
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = detectDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var out []record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewImportError("failed to parse file: " + err.Error())
		}
		line, _ := r.FieldPos(0)
		out = append(out, record{Line: line, Fields: fields})
	}
	return out, nil
}

// readWorkbook reads the first worksheet of an XLSX file.
func readWorkbook(data []byte) ([]record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewImportError("failed to open workbook: " + err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewImportError("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewImportError("failed to read worksheet: " + err.Error())
	}

	out := make([]record, 0, len(rows))
	for i, fields := range rows {
		out = append(out, record{Line: i + 1, Fields: fields})
	}
	return out, nil
}
