package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/carbocation/kinshipmap"
	"github.com/carbocation/kinshipmap/heatmap"
)

// run executes one load -> build -> classify -> render pass and returns the
// result directory it wrote into. Nothing is created on disk until the input
// has been read and validated.
func run(ctx context.Context, cfg config) (string, error) {
	started := time.Now()

	scale := kinshipmap.NewScale(cfg.Policy)

	var jsonConfig heatmap.JSONConfig
	if cfg.ConfigPath != "" {
		var err error
		if jsonConfig, err = heatmap.ParseJSONConfigFromPath(cfg.ConfigPath); err != nil {
			return "", err
		}
	}

	opts, err := jsonConfig.Options(scale, cfg.FontSize)
	if err != nil {
		return "", err
	}

	rows, err := kinshipmap.Load(ctx, cfg.Prefix, kinshipmap.LoadOptions{Client: cfg.Client, Delimiter: cfg.Delimiter})
	if err != nil {
		return "", err
	}

	m, warnings, err := kinshipmap.Build(rows)
	if err != nil {
		return "", err
	}
	for _, w := range warnings {
		log.Println("Warning:", w)
	}
	log.Printf("Built a %d x %d kinship matrix from %d pairs\n", m.Len(), m.Len(), len(rows))

	sum, err := kinshipmap.Summarize(m, scale)
	if err != nil {
		return "", err
	}
	log.Println(sum)
	for i, iv := range scale.Intervals() {
		log.Printf("%s: %d pairs\n", iv, sum.Counts[i])
	}

	stamp := cfg.Now.Format(TimestampFormat)
	resultDir := filepath.Join(cfg.OutDir, "result_"+stamp)
	if err := os.MkdirAll(resultDir, 0755); err != nil {
		return "", err
	}

	heatmapPath := filepath.Join(resultDir, fmt.Sprintf("Heatmap_%s.png", stamp))
	if err := heatmap.RenderFile(heatmapPath, m, scale, opts); err != nil {
		return resultDir, err
	}
	log.Println("Wrote", heatmapPath)

	if cfg.Pairs {
		pairsPath := filepath.Join(resultDir, fmt.Sprintf("Pairs_%s.tsv", stamp))
		if err := writePairs(pairsPath, rows, scale); err != nil {
			return resultDir, err
		}
		log.Println("Wrote", pairsPath)
	}

	if cfg.Histogram {
		histogramPath := filepath.Join(resultDir, fmt.Sprintf("Histogram_%s.png", stamp))
		if err := heatmap.RenderHistogramFile(histogramPath, sum, scale, opts.Palette); err != nil {
			return resultDir, err
		}
		log.Println("Wrote", histogramPath)
	}

	log.Printf("Computation time: %.4f seconds\n", time.Since(started).Seconds())

	return resultDir, nil
}
