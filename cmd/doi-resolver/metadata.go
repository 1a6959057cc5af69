package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doi-resolver/internal/cslout"
	"github.com/pdiddy/doi-resolver/pkg/doi"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata <doi>...",
	Short: "Fetch bibliographic metadata for DOIs",
	Long: `Metadata asks the doi.org resolver for each DOI's bibliographic record
via content negotiation. The --format flag selects the rendering:

  structured  title, authors, and document type, one line each (default)
  json        the raw JSON payload as returned by the resolver
  bibtex      the BibTeX rendering as returned by the resolver
  csl         a CSL-YAML bibliography, consumable by Pandoc`,
	RunE: runMetadata,
}

func init() {
	metadataCmd.Flags().String("format", "structured", "output format: structured, json, bibtex, or csl")

	rootCmd.AddCommand(metadataCmd)
}

func runMetadata(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more DOIs")
	}
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "structured", "json", "bibtex", "csl":
	default:
		return fmt.Errorf("unknown format %q (want structured, json, bibtex, or csl)", format)
	}

	cfg := clientConfig()
	var records []*doi.Metadata
	failed := 0
	for _, value := range args {
		d, err := doi.NewWithConfig(value, cfg)
		if err != nil {
			return err
		}
		logger.Debug("fetching metadata", "doi", value, "format", format)
		if err := printMetadata(d, format, &records); err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s (%v)\n", value, err)
			failed++
		}
	}

	// CSL output is a single YAML document covering every record.
	if format == "csl" && len(records) > 0 {
		if err := cslout.FormatCSL(records, os.Stdout); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d DOI(s) failed metadata fetch", failed)
	}
	return nil
}

func printMetadata(d *doi.DOI, format string, records *[]*doi.Metadata) error {
	switch format {
	case "json":
		body, err := d.MetadataJSONString()
		if err != nil {
			return err
		}
		fmt.Println(body)
	case "bibtex":
		body, err := d.MetadataBibTeX()
		if err != nil {
			return err
		}
		fmt.Println(body)
	case "csl":
		meta, err := d.Metadata()
		if err != nil {
			return err
		}
		*records = append(*records, meta)
	default:
		meta, err := d.Metadata()
		if err != nil {
			return err
		}
		printStructured(meta)
	}
	return nil
}

func printStructured(meta *doi.Metadata) {
	fmt.Printf("DOI:    %s\n", meta.DOI)
	if meta.Title != "" {
		fmt.Printf("Title:  %s\n", meta.Title)
	}
	for _, author := range meta.Authors {
		name, err := author.FullName()
		if err != nil {
			continue
		}
		fmt.Printf("Author: %s\n", name)
	}
	if meta.Type != "" {
		fmt.Printf("Type:   %s\n", meta.Type)
	}
}
