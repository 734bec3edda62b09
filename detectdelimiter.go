package kinshipmap

import (
	"bufio"
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// sniffDelimiter looks at the first few kilobytes buffered in br without
// consuming them.
func sniffDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(4096)

	// KING always writes tabs; only fall back to detection when none are seen
	// in the header line.
	if line := head[:firstNewline(head)]; bytes.IndexByte(line, '\t') >= 0 {
		return '\t'
	}

	return DetermineDelimiter(bytes.NewReader(head))
}

func firstNewline(b []byte) int {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return i
	}

	return len(b)
}
