package main

import (
	"encoding/csv"
	"os"

	"github.com/carbocation/kinshipmap"
	"github.com/gocarina/gocsv"
)

type pairRecord struct {
	FID1         string  `csv:"FID1"`
	ID1          string  `csv:"ID1"`
	FID2         string  `csv:"FID2"`
	ID2          string  `csv:"ID2"`
	Source       string  `csv:"Source"`
	Kinship      float64 `csv:"Kinship"`
	Band         string  `csv:"Band"`
	Relationship string  `csv:"Relationship"`
}

// writePairs writes one tab-delimited line per input row, in input order,
// with the band its scaled kinship falls into.
func writePairs(path string, rows []kinshipmap.Relationship, scale kinshipmap.Scale) error {
	records := make([]pairRecord, 0, len(rows))
	for _, row := range rows {
		iv := scale.Classify(row.Kinship * kinshipmap.ScaleFactor)
		records = append(records, pairRecord{
			FID1:         row.FID1,
			ID1:          row.ID1,
			FID2:         row.FID2,
			ID2:          row.ID2,
			Source:       row.Source.String(),
			Kinship:      row.Kinship,
			Band:         iv.Name(),
			Relationship: iv.Relationship().String(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(w)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
