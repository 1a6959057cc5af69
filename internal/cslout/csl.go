// Package cslout renders metadata records as CSL-YAML bibliographies.
// The field names and structure follow the CSL-JSON/CSL-YAML schema so the
// output is consumable by Pandoc and reference managers.
package cslout

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doi-resolver/pkg/doi"
)

// CSLItem is a bibliographic entry in CSL format.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title,omitempty"`
	Author []CSLName `yaml:"author,omitempty"`
	DOI    string    `yaml:"DOI"`
}

// CSLName is a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
	Suffix string `yaml:"suffix,omitempty"`
}

// FormatCSL writes the records as a CSL-YAML list to w.
func FormatCSL(records []*doi.Metadata, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a metadata record to a CSLItem. A record without a
// type tag gets the generic "document" type, since CSL requires one.
func toCSLItem(r *doi.Metadata) CSLItem {
	item := CSLItem{
		ID:    r.DOI,
		Type:  r.Type.String(),
		Title: r.Title,
		DOI:   r.DOI,
	}
	if item.Type == "" {
		item.Type = doi.TypeDocument.String()
	}
	for _, a := range r.Authors {
		item.Author = append(item.Author, CSLName{
			Family: a.Family,
			Given:  a.Given,
			Suffix: a.Suffix,
		})
	}
	return item
}
