package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/sqlite"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	source := firstNonEmpty(c.Source, deps.Config.SourceDir)

	builder := deps.builder()
	snapshot, err := builder.Analyze(deps.Ctx, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Analyzed %d files, wrote %s\n", snapshot.TotalFiles, c.Out)

	if c.DB == "" {
		return nil
	}
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
		return err
	}
	defer db.Close()

	svc := sqlite.NewAnalysisService(db)
	for _, page := range snapshot.Pages {
		if err := svc.CreatePageAnalysis(deps.Ctx, page); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", edenweb.ErrorMessage(err))
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Recorded %d analyses in %s\n", len(snapshot.Pages), c.DB)
	return nil
}
