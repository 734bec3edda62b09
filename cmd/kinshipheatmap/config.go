package main

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carbocation/kinshipmap"
)

// TimestampFormat names the result folder and the files inside it.
const TimestampFormat = "2006-01-02_15.04.05"

type config struct {
	Prefix     string
	FontSize   float64
	OutDir     string
	Policy     kinshipmap.NegativePolicy
	Delimiter  rune
	ConfigPath string
	Pairs      bool
	Histogram  bool

	// Client is only set for gs:// prefixes
	Client *storage.Client

	// Now stamps the output folder and files
	Now time.Time
}

func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	case "comma", ",":
		return ',', nil
	case "space", " ":
		return ' ', nil
	case "auto":
		return 0, nil
	}

	return 0, fmt.Errorf("unknown delimiter %q (expected tab, comma, space or auto)", s)
}
