// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

// DocumentType is the document classification tag from the resolver's
// metadata, drawn from the CSL item-type vocabulary. The type carries the
// tag verbatim, so every value round-trips through its string form exactly;
// Known reports whether the tag is one of the named vocabulary entries.
type DocumentType string

// The CSL item-type vocabulary. Hyphen and underscore spellings follow the
// schema exactly; matching is case-sensitive.
const (
	TypeArticle               DocumentType = "article"
	TypeArticleJournal        DocumentType = "article-journal"
	TypeArticleMagazine       DocumentType = "article-magazine"
	TypeArticleNewspaper      DocumentType = "article-newspaper"
	TypeBill                  DocumentType = "bill"
	TypeBook                  DocumentType = "book"
	TypeBroadcast             DocumentType = "broadcast"
	TypeChapter               DocumentType = "chapter"
	TypeClassic               DocumentType = "classic"
	TypeCollection            DocumentType = "collection"
	TypeDataset               DocumentType = "dataset"
	TypeDocument              DocumentType = "document"
	TypeEntry                 DocumentType = "entry"
	TypeEntryDictionary       DocumentType = "entry-dictionary"
	TypeEntryEncyclopedia     DocumentType = "entry-encyclopedia"
	TypeEvent                 DocumentType = "event"
	TypeFigure                DocumentType = "figure"
	TypeGraphic               DocumentType = "graphic"
	TypeHearing               DocumentType = "hearing"
	TypeInterview             DocumentType = "interview"
	TypeLegalCase             DocumentType = "legal_case"
	TypeLegislation           DocumentType = "legislation"
	TypeManuscript            DocumentType = "manuscript"
	TypeMap                   DocumentType = "map"
	TypeMotionPicture         DocumentType = "motion_picture"
	TypeMusicalScore          DocumentType = "musical_score"
	TypePamphlet              DocumentType = "pamphlet"
	TypePaperConference       DocumentType = "paper-conference"
	TypePatent                DocumentType = "patent"
	TypePerformance           DocumentType = "performance"
	TypePeriodical            DocumentType = "periodical"
	TypePersonalCommunication DocumentType = "personal_communication"
	TypePost                  DocumentType = "post"
	TypePostWeblog            DocumentType = "post-weblog"
	TypeRegulation            DocumentType = "regulation"
	TypeReport                DocumentType = "report"
	TypeReview                DocumentType = "review"
	TypeReviewBook            DocumentType = "review-book"
	TypeSoftware              DocumentType = "software"
	TypeSong                  DocumentType = "song"
	TypeSpeech                DocumentType = "speech"
	TypeStandard              DocumentType = "standard"
	TypeThesis                DocumentType = "thesis"
	TypeTreaty                DocumentType = "treaty"
	TypeWebpage               DocumentType = "webpage"
)

var knownTypes = map[DocumentType]bool{
	TypeArticle:               true,
	TypeArticleJournal:        true,
	TypeArticleMagazine:       true,
	TypeArticleNewspaper:      true,
	TypeBill:                  true,
	TypeBook:                  true,
	TypeBroadcast:             true,
	TypeChapter:               true,
	TypeClassic:               true,
	TypeCollection:            true,
	TypeDataset:               true,
	TypeDocument:              true,
	TypeEntry:                 true,
	TypeEntryDictionary:       true,
	TypeEntryEncyclopedia:     true,
	TypeEvent:                 true,
	TypeFigure:                true,
	TypeGraphic:               true,
	TypeHearing:               true,
	TypeInterview:             true,
	TypeLegalCase:             true,
	TypeLegislation:           true,
	TypeManuscript:            true,
	TypeMap:                   true,
	TypeMotionPicture:         true,
	TypeMusicalScore:          true,
	TypePamphlet:              true,
	TypePaperConference:       true,
	TypePatent:                true,
	TypePerformance:           true,
	TypePeriodical:            true,
	TypePersonalCommunication: true,
	TypePost:                  true,
	TypePostWeblog:            true,
	TypeRegulation:            true,
	TypeReport:                true,
	TypeReview:                true,
	TypeReviewBook:            true,
	TypeSoftware:              true,
	TypeSong:                  true,
	TypeSpeech:                true,
	TypeStandard:              true,
	TypeThesis:                true,
	TypeTreaty:                true,
	TypeWebpage:               true,
}

// ParseDocumentType converts a raw type tag into a DocumentType. An
// unrecognized tag is carried through unchanged rather than rejected, so
// parsing never fails and unknown tags survive a round-trip verbatim.
func ParseDocumentType(tag string) DocumentType {
	return DocumentType(tag)
}

// Known reports whether the tag is part of the named CSL vocabulary. No
// normalization is applied: "Article" and "article " are both unknown.
func (t DocumentType) Known() bool {
	return knownTypes[t]
}

func (t DocumentType) String() string {
	return string(t)
}
