// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

import "testing"

func TestDocumentTypeRoundTrip(t *testing.T) {
	for tag := range knownTypes {
		if got := ParseDocumentType(tag.String()); got != tag {
			t.Errorf("ParseDocumentType(%q) = %q, want round-trip", tag.String(), got)
		}
		if !tag.Known() {
			t.Errorf("%q.Known() = false, want true", tag)
		}
	}
}

func TestDocumentTypeSpellings(t *testing.T) {
	// Hyphen and underscore forms come from the schema verbatim.
	tests := []struct {
		tag  string
		want DocumentType
	}{
		{"article-journal", TypeArticleJournal},
		{"legal_case", TypeLegalCase},
		{"paper-conference", TypePaperConference},
		{"motion_picture", TypeMotionPicture},
		{"post-weblog", TypePostWeblog},
		{"webpage", TypeWebpage},
	}
	for _, tt := range tests {
		got := ParseDocumentType(tt.tag)
		if got != tt.want {
			t.Errorf("ParseDocumentType(%q) = %q, want %q", tt.tag, got, tt.want)
		}
		if got.String() != tt.tag {
			t.Errorf("String() = %q, want %q", got.String(), tt.tag)
		}
	}
}

func TestDocumentTypeUnknownCarriedVerbatim(t *testing.T) {
	got := ParseDocumentType("nonsense-tag")
	if got.Known() {
		t.Error(`ParseDocumentType("nonsense-tag").Known() = true, want false`)
	}
	if got.String() != "nonsense-tag" {
		t.Errorf("String() = %q, want %q", got.String(), "nonsense-tag")
	}
}

func TestDocumentTypeLookupIsExact(t *testing.T) {
	// No case folding or trimming in the lookup.
	for _, tag := range []string{"Article", "ARTICLE", "article ", " article", "article_journal"} {
		if ParseDocumentType(tag).Known() {
			t.Errorf("ParseDocumentType(%q).Known() = true, want false", tag)
		}
	}
}
