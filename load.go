package kinshipmap

import (
	"bufio"
	"context"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// LoadOptions controls how KING tables are located and parsed.
type LoadOptions struct {
	// Client is only needed for gs:// prefixes. May be nil.
	Client *storage.Client

	// Delimiter separates columns. Zero means sniff it from the file.
	Delimiter rune
}

// Load reads <prefix>.kin and <prefix>.kin0 and returns their rows, .kin rows
// first. Either file may be absent, but not both: in that case a
// *MissingInputError is returned.
func Load(ctx context.Context, prefix string, opts LoadOptions) ([]Relationship, error) {
	prefix = ExpandHome(prefix)

	type found struct {
		path   string
		layout Layout
	}

	present := make([]found, 0, len(Layouts))
	tried := make([]string, 0, len(Layouts))
	for _, layout := range Layouts {
		path := prefix + layout.Suffix
		tried = append(tried, path)

		exists, err := Exists(ctx, path, opts.Client)
		if err != nil {
			return nil, err
		}
		if exists {
			present = append(present, found{path: path, layout: layout})
		}
	}

	if len(present) == 0 {
		return nil, &MissingInputError{Prefix: prefix, Tried: tried}
	}

	var out []Relationship
	for _, v := range present {
		log.Printf("%s exists, processing %s file...\n", v.path, v.layout.Suffix)

		rows, err := LoadTable(ctx, v.path, v.layout, opts)
		if err != nil {
			return nil, err
		}

		log.Printf("Loaded %d pairs from %s\n", len(rows), v.path)
		out = append(out, rows...)
	}

	return out, nil
}

// LoadTable opens a single table, transparently decompressing it if needed.
func LoadTable(ctx context.Context, path string, layout Layout, opts LoadOptions) ([]Relationship, error) {
	f, err := MaybeOpenFromGoogleStorage(ctx, path, opts.Client)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Closing rc also closes f
	rc, err := maybeDecompress(f)
	if err != nil {
		f.Close()
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	defer rc.Close()

	br := bufio.NewReader(rc)

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = sniffDelimiter(br)
	}

	return ReadTable(br, path, layout, delimiter)
}
