package kinshipmap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// ReadTable parses one KING table from r. The path is only used for error
// messages. Rows are returned in file order.
func ReadTable(r io.Reader, path string, layout Layout, delimiter rune) ([]Relationship, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter

	// TrimLeadingSpace also eats delimiters that are whitespace, which would
	// merge an empty tab-separated field into its neighbour. Only runs of
	// spaces are collapsed; other fields are trimmed after reading.
	cr.TrimLeadingSpace = delimiter == ' '

	hr := headerCheckingReader{CSVReader: cr, path: path, required: layout.Required}

	switch layout.Source {
	case SameFamily:
		records := []kinRecord{}
		if err := gocsv.UnmarshalCSV(hr, &records); err != nil {
			return nil, tableError(path, err)
		}

		out := make([]Relationship, 0, len(records))
		for i, rec := range records {
			k, err := parseKinship(path, i+2, rec.Kinship)
			if err != nil {
				return nil, err
			}

			// Same-family rows share a family by definition
			out = append(out, Relationship{
				ID1:     rec.ID1,
				ID2:     rec.ID2,
				FID1:    rec.FID,
				FID2:    rec.FID,
				Kinship: k,
				Source:  SameFamily,
			})
		}
		return out, nil

	case CrossFamily:
		records := []kin0Record{}
		if err := gocsv.UnmarshalCSV(hr, &records); err != nil {
			return nil, tableError(path, err)
		}

		out := make([]Relationship, 0, len(records))
		for i, rec := range records {
			k, err := parseKinship(path, i+2, rec.Kinship)
			if err != nil {
				return nil, err
			}

			out = append(out, Relationship{
				ID1:     rec.ID1,
				ID2:     rec.ID2,
				FID1:    rec.FID1,
				FID2:    rec.FID2,
				Kinship: k,
				Source:  CrossFamily,
			})
		}
		return out, nil
	}

	return nil, fmt.Errorf("%s: unknown table layout %q", path, layout.Suffix)
}

func parseKinship(path string, line int, value string) (float64, error) {
	k, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &MalformedInputError{Path: path, Line: line, Column: ColKinship, Value: value, Err: err}
	}

	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, &MalformedInputError{Path: path, Line: line, Column: ColKinship, Value: value, Err: fmt.Errorf("kinship must be finite")}
	}

	return k, nil
}

// tableError converts whatever the csv layer produced into a
// MalformedInputError.
func tableError(path string, err error) error {
	var mie *MalformedInputError
	if errors.As(err, &mie) {
		return err
	}

	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &MalformedInputError{Path: path, Line: pe.Line, Err: pe.Err}
	}

	return &MalformedInputError{Path: path, Err: err}
}

// headerCheckingReader trims every field and makes sure every required column
// is present before gocsv maps the rows onto structs. Without it a missing
// column would silently decode as empty strings.
type headerCheckingReader struct {
	gocsv.CSVReader
	path     string
	required []string
}

func (h headerCheckingReader) ReadAll() ([][]string, error) {
	rows, err := h.CSVReader.ReadAll()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for i, v := range row {
			row[i] = strings.TrimSpace(v)
		}
	}

	if len(rows) == 0 {
		return rows, nil
	}

	return rows, readHeader(h.path, rows[0], h.required)
}

func readHeader(path string, cols []string, required []string) error {
	present := make(map[string]struct{}, len(cols))
	for _, v := range cols {
		present[v] = struct{}{}
	}

	for _, want := range required {
		if _, exists := present[want]; !exists {
			return &MalformedInputError{Path: path, Line: 1, Column: want, Err: fmt.Errorf("expected header column %s, but found %v", want, cols)}
		}
	}

	return nil
}
