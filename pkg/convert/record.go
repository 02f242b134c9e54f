package convert

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

// AuthorityRecord assembles the full JSON-LD document of one authority
// row by applying each field converter and folding the fragments
// together.
type AuthorityRecord struct {
	baseURI string
	related AuthorityRelated
}

// NewAuthorityRecord returns an assembler minting URIs under baseURI.
func NewAuthorityRecord(baseURI string) AuthorityRecord {
	return AuthorityRecord{
		baseURI: baseURI,
		related: NewAuthorityRelated(baseURI),
	}
}

// Convert builds the document for one row. It returns the record id
// alongside the document so callers can report on the record without
// reparsing. A row without a Record ID fails.
func (c AuthorityRecord) Convert(row Row) (jsonld.Fragment, string, error) {
	recordID, ok := row.Get("Record ID")
	if !ok {
		return nil, "", recordIDError(row)
	}

	b := jsonld.NewBuilder()
	b.Merge(RecordID(relation.Authority, c.baseURI, recordID))
	b.Merge(RecordType(relation.Authority, row.Value("Record Type"), recordID))
	b.Merge(RecordNature(row.Value("Record Nature")))
	b.Merge(Name(row, recordID))
	b.Merge(Description(row.Value("Description"), recordID))
	b.Merge(Classification(row, recordID))
	b.Merge(LinkedData(row.Value("Linked Data"), recordID))
	b.Merge(Attributes(row.Value("Attributes"), recordID))
	b.Merge(Redirect(c.baseURI, row.Value("Redirect")))
	b.Merge(Metadata(relation.Authority, row, recordID))
	b.Merge(c.related.Convert(row.Value("Related Authorities"), recordID))

	return b.Fragment(), recordID, nil
}

// CitationRecord assembles the full JSON-LD document of one citation
// row.
type CitationRecord struct {
	baseURI     string
	authorities RelatedAuthorities
	citations   RelatedCitations
}

// NewCitationRecord returns an assembler minting URIs under baseURI.
func NewCitationRecord(baseURI string) CitationRecord {
	return CitationRecord{
		baseURI:     baseURI,
		authorities: NewRelatedAuthorities(baseURI),
		citations:   NewRelatedCitations(baseURI),
	}
}

// Convert builds the document for one row. A row without a Record ID
// fails.
func (c CitationRecord) Convert(row Row) (jsonld.Fragment, string, error) {
	recordID, ok := row.Get("Record ID")
	if !ok {
		return nil, "", recordIDError(row)
	}

	b := jsonld.NewBuilder()
	b.Merge(RecordID(relation.Citation, c.baseURI, recordID))
	b.Merge(RecordType(relation.Citation, row.Value("Record Type"), recordID))
	b.Merge(RecordNature(row.Value("Record Nature")))
	b.Merge(Title(row.Value("Title"), recordID))
	b.Merge(Abstract(row.Value("Abstract"), recordID))
	b.Merge(Language(row.Value("Language"), recordID))
	b.Merge(PublicationDetails(row, recordID))
	b.Merge(JournalMetadata(row, c.baseURI, recordID))
	b.Merge(LinkedData(row.Value("Linked Data"), recordID))
	b.Merge(Attributes(row.Value("Attributes"), recordID))
	b.Merge(Metadata(relation.Citation, row, recordID))
	b.Merge(c.authorities.Convert(row.Value("Related Authorities"), recordID))
	b.Merge(c.citations.Convert(row.Value("Related Citations"), recordID))

	return b.Fragment(), recordID, nil
}

func recordIDError(row Row) error {
	return &gn.Error{
		Code: errcode.ConvertInputError,
		Msg:  fmt.Sprintf("Row has no Record ID (columns: %d)", len(row)),
	}
}
