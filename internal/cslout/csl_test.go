package cslout

import (
	"bytes"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doi-resolver/pkg/doi"
)

func TestToCSLItem(t *testing.T) {
	meta := &doi.Metadata{
		DOI:   "10.1109/TCSII.2024.3366282",
		Title: "Flexible High-Level Synthesis",
		Type:  doi.TypeArticleJournal,
		Authors: []doi.Person{
			{Given: "Teddy", Family: "Jerry", Suffix: "Jr."},
			{Family: "Zhao"},
		},
	}

	item := toCSLItem(meta)

	if item.ID != "10.1109/TCSII.2024.3366282" {
		t.Errorf("ID = %q, want DOI", item.ID)
	}
	if item.Type != "article-journal" {
		t.Errorf("Type = %q, want %q", item.Type, "article-journal")
	}
	if item.DOI != "10.1109/TCSII.2024.3366282" {
		t.Errorf("DOI = %q, want %q", item.DOI, "10.1109/TCSII.2024.3366282")
	}
	if len(item.Author) != 2 {
		t.Fatalf("len(Author) = %d, want 2", len(item.Author))
	}
	if item.Author[0] != (CSLName{Family: "Jerry", Given: "Teddy", Suffix: "Jr."}) {
		t.Errorf("Author[0] = %+v", item.Author[0])
	}
	if item.Author[1] != (CSLName{Family: "Zhao"}) {
		t.Errorf("Author[1] = %+v", item.Author[1])
	}
}

func TestToCSLItemDefaultsType(t *testing.T) {
	// CSL requires a type; records without one become "document".
	item := toCSLItem(&doi.Metadata{DOI: "10.1234/untyped"})
	if item.Type != "document" {
		t.Errorf("Type = %q, want %q", item.Type, "document")
	}
}

func TestFormatCSL(t *testing.T) {
	records := []*doi.Metadata{
		{DOI: "10.1234/a", Title: "First", Type: doi.TypeArticleJournal},
		{DOI: "10.1234/b", Title: "Second", Type: doi.TypeDataset,
			Authors: []doi.Person{{Given: "Ada", Family: "Lovelace"}}},
	}

	var buf bytes.Buffer
	if err := FormatCSL(records, &buf); err != nil {
		t.Fatalf("FormatCSL() error = %v", err)
	}

	var decoded []CSLItem
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len(decoded) = %d, want 2", len(decoded))
	}
	if decoded[0].Title != "First" || decoded[0].Type != "article-journal" {
		t.Errorf("decoded[0] = %+v", decoded[0])
	}
	if decoded[1].Author[0].Given != "Ada" {
		t.Errorf("decoded[1].Author = %+v", decoded[1].Author)
	}
}
