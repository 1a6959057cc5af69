// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Metadata is the structured bibliographic record for a DOI, projected from
// the resolver's CSL-style JSON response. Fields the response lacks stay at
// their zero values: an empty Title, a nil Authors slice, an empty Type.
// The record is never mutated after Metadata returns it.
type Metadata struct {
	DOI     string       `json:"doi" yaml:"doi"`
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Authors []Person     `json:"authors,omitempty" yaml:"authors,omitempty"`
	Type    DocumentType `json:"type,omitempty" yaml:"type,omitempty"`
}

// Person is a name from the resolver's author list. Absent parts are empty
// strings.
type Person struct {
	Given  string `json:"given,omitempty" yaml:"given,omitempty"`
	Family string `json:"family,omitempty" yaml:"family,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// FullName joins the present name parts with single spaces, always in
// given, family, suffix order. A person with no parts at all is the one
// case where partial data is rejected: ErrEmptyName.
func (p Person) FullName() (string, error) {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.Given, p.Family, p.Suffix} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyName
	}
	return strings.Join(parts, " "), nil
}

// metadataRequest issues a content-negotiated GET against the resolver and
// returns the response body. Unlike Resolve, 418 gets no special treatment
// here: the teapot quirk belongs to the redirect chain, and any non-2xx
// status on a metadata request is a *TransportError.
func (d *DOI) metadataRequest(accept string) ([]byte, error) {
	target, err := d.ResolverURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", d.agent())

	resp, err := d.httpClient().Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if !statusOK(resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	return body, nil
}

// MetadataJSON fetches the resolver's JSON metadata and decodes it as a
// generic object. A body that does not decode is a *ParseError.
func (d *DOI) MetadataJSON() (map[string]any, error) {
	body, err := d.metadataRequest("application/json")
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	return raw, nil
}

// MetadataJSONString fetches the resolver's JSON metadata and returns the
// body verbatim, undecoded.
func (d *DOI) MetadataJSONString() (string, error) {
	body, err := d.metadataRequest("application/json")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// MetadataBibTeX fetches the resolver's BibTeX rendering of the record.
func (d *DOI) MetadataBibTeX() (string, error) {
	body, err := d.metadataRequest("application/x-bibtex")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Metadata fetches the JSON metadata and extracts the structured record.
// Extraction is defensive: a missing or mistyped field becomes its zero
// value, and a malformed author entry never aborts the rest of the list.
// Only the fetch and the top-level JSON decode can fail.
func (d *DOI) Metadata() (*Metadata, error) {
	value, err := d.Get()
	if err != nil {
		return nil, err
	}
	raw, err := d.MetadataJSON()
	if err != nil {
		return nil, err
	}

	meta := &Metadata{DOI: value}
	if title, ok := raw["title"].(string); ok {
		meta.Title = title
	}
	if authors, ok := raw["author"].([]any); ok {
		meta.Authors = make([]Person, 0, len(authors))
		for _, entry := range authors {
			fields, _ := entry.(map[string]any)
			meta.Authors = append(meta.Authors, Person{
				Given:  stringField(fields, "given"),
				Family: stringField(fields, "family"),
				Suffix: stringField(fields, "suffix"),
			})
		}
	}
	if tag, ok := raw["type"].(string); ok {
		meta.Type = ParseDocumentType(tag)
	}
	return meta, nil
}

// stringField extracts a string value from a decoded JSON object, tolerating
// a nil map and non-string values.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
