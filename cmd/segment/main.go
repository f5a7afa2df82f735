// cmd/segment/main.go
//
// One-shot batch runner: segment every spreadsheet in a directory for one
// client and write the per-group files to an output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/unclebandit/leadsegment-backend/internal/registry"
	"github.com/unclebandit/leadsegment-backend/internal/service"
	"github.com/unclebandit/leadsegment-backend/internal/unify"
)

func main() {
	clientID := flag.String("client", "", "client id (see -list)")
	list := flag.Bool("list", false, "print known client ids and exit")
	inDir := flag.String("in", ".", "directory with input .xlsx/.csv files")
	outDir := flag.String("out", "out", "directory for generated files")
	refDate := flag.String("date", "", "reference date YYYY-MM-DD (default today)")
	dedupe := flag.Bool("dedupe", false, "collapse records sharing a phone number")
	overlay := flag.String("profiles", "", "optional YAML profile overlay")
	flag.Parse()

	reg := registry.New()
	if *overlay != "" {
		if err := reg.LoadOverlay(*overlay); err != nil {
			log.Fatal(err)
		}
	}

	if *list {
		for _, id := range reg.ListClientIDs() {
			fmt.Println(id)
		}
		return
	}
	if *clientID == "" {
		log.Fatal("missing -client (use -list to see known ids)")
	}

	reference := time.Now()
	if *refDate != "" {
		parsed, err := time.Parse("2006-01-02", *refDate)
		if err != nil {
			log.Fatalf("invalid -date %q: want YYYY-MM-DD", *refDate)
		}
		reference = parsed
	}

	inputs, err := readInputs(*inDir)
	if err != nil {
		log.Fatal(err)
	}
	if len(inputs) == 0 {
		log.Fatalf("no .xlsx or .csv files in %s", *inDir)
	}

	svc := &service.PipelineService{Registry: reg}
	result, err := svc.Run(service.RunRequest{
		ClientID:  *clientID,
		Reference: reference,
		Inputs:    inputs,
		Dedupe:    *dedupe,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, warn := range result.SkippedTables {
		log.Printf("⚠️ skipped %s: %s", warn.Table, warn.Reason)
	}
	if result.InvalidDates > 0 {
		log.Printf("⚠️ %d records with unparseable lead dates (excluded from date-filtered groups)", result.InvalidDates)
	}
	if len(result.MissingColumns) > 0 {
		log.Printf("⚠️ output columns missing from every input: %s", strings.Join(result.MissingColumns, ", "))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, artifact := range result.Artifacts {
		path := filepath.Join(*outDir, artifact.FileName)
		if err := os.WriteFile(path, artifact.Content, 0o644); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Processed %d records from %d files", result.TotalRecords, len(inputs))
	for _, g := range result.Groups {
		if g.FileName != "" {
			log.Printf("  %s: %d records -> %s", g.Name, g.Records, g.FileName)
		} else {
			log.Printf("  %s: 0 records", g.Name)
		}
	}
}

func readInputs(dir string) ([]unify.Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".xlsx" || ext == ".csv" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var inputs []unify.Input
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, unify.Input{Name: name, Data: data})
	}
	return inputs, nil
}
