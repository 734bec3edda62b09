// kinshipheatmap reads the pairwise kinship tables written by KING
// (<prefix>.kin and/or <prefix>.kin0), arranges them into a symmetric
// subject-by-subject matrix, and draws it as a heatmap whose colours mark the
// inferred relationship: duplicate/MZ twin, first, second or third degree, or
// unrelated. Output goes to a new result_<timestamp> directory.
package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carbocation/kinshipmap"
	_ "github.com/carbocation/kinshipmap/compileinfoprint"
)

func main() {
	var cfg config
	var policy, delimiter string

	flag.StringVar(&cfg.Prefix, "i", "", "Path prefix of the KING output. For example, use '-i path/to/king' if 'king.kin' and/or 'king.kin0' exist in the same directory. May be a gs:// path.")
	flag.Float64Var(&cfg.FontSize, "size", 7.0, "Font size of the heatmap annotations.")
	flag.StringVar(&cfg.OutDir, "out", ".", "Directory in which the result_<timestamp> folder is created.")
	flag.StringVar(&policy, "negative", "preserve", "How to treat negative kinship: 'preserve' keeps the sign and colours negatives on their own scale, 'clamp' treats them as 0 (unrelated).")
	flag.StringVar(&delimiter, "delimiter", "tab", "Column delimiter of the KING files: tab, comma, space, or auto.")
	flag.StringVar(&cfg.ConfigPath, "config", "", "(Optional) Path to a JSON file overriding the title, colors, cell_size or font_size.")
	flag.BoolVar(&cfg.Pairs, "pairs", false, "Also write every input pair with its relationship band as a tab-delimited file.")
	flag.BoolVar(&cfg.Histogram, "histogram", false, "Also draw a bar chart of the number of pairs in each relationship band.")
	flag.Parse()

	if cfg.Prefix == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -i")
	}

	var err error
	if cfg.Policy, err = kinshipmap.ParseNegativePolicy(policy); err != nil {
		log.Fatalln(err)
	}

	if cfg.Delimiter, err = parseDelimiter(delimiter); err != nil {
		log.Fatalln(err)
	}

	// Initialize the Google Storage client, but only if our prefix indicates
	// that we are pointing to a Google Storage path.
	if strings.HasPrefix(cfg.Prefix, "gs://") {
		cfg.Client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
		defer cfg.Client.Close()
	}

	cfg.Now = time.Now()

	if _, err := run(context.Background(), cfg); err != nil {
		log.Fatalln(err)
	}
}
