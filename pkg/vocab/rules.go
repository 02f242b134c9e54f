package vocab

// Rule describes how one relationship type token projects onto the
// standard vocabularies.
//
// Primary is the output property the relationship feeds. Equivalents
// are alias properties folded into the same semantic slot by the
// shared @context. URI is the class of the relationship wrapper
// object, distinct from the class of the projected entity.
// SubPropertyOf, when set, marks Primary as narrower than another
// property; it only affects context generation, never per-record
// output. When both Equivalents and SubPropertyOf are present,
// SubPropertyOf wins and the equivalents are not emitted.
type Rule struct {
	Type          string
	Primary       string
	Equivalents   []string
	URI           string
	SubPropertyOf string
}

// AuthorityRules lists the authority-relationship (ACR) rules in
// declaration order. The Type field is the normalized token.
var AuthorityRules = []Rule{
	// Person contributors.
	{
		Type:        "AUTHOR",
		Primary:     "dc:creator",
		Equivalents: []string{"schema:author"},
		URI:         "isiscb:author",
	},
	{
		Type:          "EDITOR",
		Primary:       "schema:editor",
		URI:           "isiscb:editor",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "TRANSLATOR",
		Primary:       "schema:translator",
		URI:           "isiscb:translator",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "ADVISOR",
		Primary:       "isiscb:advisor",
		URI:           "isiscb:advisor",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "COMMITTEE_MEMBER",
		Primary:       "isiscb:committeeMember",
		URI:           "isiscb:committeeMember",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:        "CONTRIBUTOR",
		Primary:     "dc:contributor",
		Equivalents: []string{"schema:contributor"},
		URI:         "isiscb:contributor",
	},

	// Subjects and categories.
	{
		Type:        "SUBJECT",
		Primary:     "dc:subject",
		Equivalents: []string{"schema:about"},
		URI:         "isiscb:subject",
	},
	{
		Type:    "CATEGORY",
		Primary: "isiscb:category",
		URI:     "isiscb:category",
	},

	// Publication containers.
	{
		Type:        "PERIODICAL",
		Primary:     "schema:isPartOf",
		Equivalents: []string{"dcterms:isPartOf"},
		URI:         "isiscb:periodical",
	},
	{
		Type:        "BOOK_SERIES",
		Primary:     "schema:isPartOf",
		Equivalents: []string{"dcterms:isPartOf"},
		URI:         "isiscb:bookSeries",
	},

	// Institutions.
	{
		Type:        "PUBLISHER",
		Primary:     "dc:publisher",
		Equivalents: []string{"schema:publisher"},
		URI:         "isiscb:publisher",
	},
	{
		Type:    "SCHOOL",
		Primary: "bibo:degreeGrantor",
		URI:     "isiscb:school",
	},
	{
		Type:        "INSTITUTION",
		Primary:     "isiscb:institution",
		Equivalents: []string{"schema:affiliation"},
		URI:         "isiscb:institution",
	},
	{
		Type:    "MEETING",
		Primary: "bibo:presentedAt",
		URI:     "isiscb:meeting",
	},
	{
		Type:    "ARCHIVAL_REPOSITORY",
		Primary: "isiscb:archivalRepository",
		URI:     "isiscb:archivalRepository",
	},
	{
		Type:          "MAINTAINING_INSTITUTION",
		Primary:       "isiscb:maintainingInstitution",
		URI:           "isiscb:maintainingInstitution",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "DISTRIBUTOR",
		Primary:       "schema:distributor",
		URI:           "isiscb:distributor",
		SubPropertyOf: "dc:contributor",
	},

	// Rare contributor-like roles.
	{
		Type:          "GUEST",
		Primary:       "isiscb:guest",
		URI:           "isiscb:guest",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "PRODUCER",
		Primary:       "schema:producer",
		URI:           "isiscb:producer",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "DIRECTOR",
		Primary:       "schema:director",
		URI:           "isiscb:director",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "WRITER",
		Primary:       "isiscb:writer",
		URI:           "isiscb:writer",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "PERFORMER",
		Primary:       "schema:performer",
		URI:           "isiscb:performer",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "COLLECTOR",
		Primary:       "isiscb:collector",
		URI:           "isiscb:collector",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "ARCHIVIST",
		Primary:       "isiscb:archivist",
		URI:           "isiscb:archivist",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "RESEARCHER",
		Primary:       "isiscb:researcher",
		URI:           "isiscb:researcher",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "DEVELOPER",
		Primary:       "isiscb:developer",
		URI:           "isiscb:developer",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "COMPILER",
		Primary:       "isiscb:compiler",
		URI:           "isiscb:compiler",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "PRESENTING_GROUP",
		Primary:       "isiscb:presentingGroup",
		URI:           "isiscb:presentingGroup",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "AWARDEE",
		Primary:       "isiscb:awardee",
		URI:           "isiscb:awardee",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "OFFICER",
		Primary:       "isiscb:officer",
		URI:           "isiscb:officer",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "HOST",
		Primary:       "isiscb:host",
		URI:           "isiscb:host",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "INTERVIEWER",
		Primary:       "isiscb:interviewer",
		URI:           "isiscb:interviewer",
		SubPropertyOf: "dc:contributor",
	},
	{
		Type:          "ORGANIZER",
		Primary:       "schema:organizer",
		URI:           "isiscb:organizer",
		SubPropertyOf: "dc:contributor",
	},

	// SKOS structure between authority records.
	{
		Type:    "BROADER_TERM",
		Primary: "skos:broader",
		URI:     "isiscb:broaderTerm",
	},
	{
		Type:    "NARROWER_TERM",
		Primary: "skos:narrower",
		URI:     "isiscb:narrowerTerm",
	},
	{
		Type:    "RELATED_TERM",
		Primary: "skos:related",
		URI:     "isiscb:relatedTerm",
	},
	{
		Type:    "USE",
		Primary: "skos:exactMatch",
		URI:     "isiscb:use",
	},
	{
		Type:    "USED_FOR",
		Primary: "skos:closeMatch",
		URI:     "isiscb:usedFor",
	},
	{
		Type:        "PARENT_INSTITUTION",
		Primary:     "isiscb:parentInstitution",
		Equivalents: []string{"skos:broader"},
		URI:         "isiscb:parentInstitution",
	},
	{
		Type:        "CHILD_INSTITUTION",
		Primary:     "isiscb:childInstitution",
		Equivalents: []string{"skos:narrower"},
		URI:         "isiscb:childInstitution",
	},
}

// CitationRules lists the citation-relationship (CCR) rules in
// declaration order.
var CitationRules = []Rule{
	{
		Type:    "IS_REVIEWED_BY",
		Primary: "isiscb:isReviewedBy",
		URI:     "isiscb:isReviewedBy",
	},
	{
		Type:    "REVIEWS",
		Primary: "isiscb:reviews",
		URI:     "isiscb:reviews",
	},
	{
		Type:    "INCLUDES_SERIES_ARTICLE",
		Primary: "isiscb:includesSeriesArticle",
		URI:     "isiscb:includesSeriesArticle",
	},
	{
		Type:    "IS_PART_OF",
		Primary: "dcterms:isPartOf",
		URI:     "isiscb:isPartOf",
	},
	{
		Type:    "HAS_PART",
		Primary: "dcterms:hasPart",
		URI:     "isiscb:hasPart",
	},
	{
		Type:    "REFERENCES",
		Primary: "dcterms:references",
		URI:     "isiscb:references",
	},
	{
		Type:    "IS_REFERENCED_BY",
		Primary: "dcterms:isReferencedBy",
		URI:     "isiscb:isReferencedBy",
	},
	{
		Type:    "SUCCEEDS",
		Primary: "dcterms:succeeds",
		URI:     "isiscb:succeeds",
	},
	{
		Type:    "PRECEDES",
		Primary: "dcterms:precedes",
		URI:     "isiscb:precedes",
	},
	{
		Type:    "REPLACES",
		Primary: "dcterms:replaces",
		URI:     "isiscb:replaces",
	},
	{
		Type:    "IS_REPLACED_BY",
		Primary: "dcterms:isReplacedBy",
		URI:     "isiscb:isReplacedBy",
	},
}

var (
	authorityRuleIdx = indexRules(AuthorityRules)
	citationRuleIdx  = indexRules(CitationRules)
)

func indexRules(rules []Rule) map[string]*Rule {
	res := make(map[string]*Rule, len(rules))
	for i := range rules {
		res[rules[i].Type] = &rules[i]
	}
	return res
}

// RuleFor returns the rule registered for a relationship type token,
// looking up the authority table first and the citation table second.
// The lookup is case-insensitive via normalization. The second return
// value is false when no rule is registered.
func RuleFor(token string) (*Rule, bool) {
	norm := NormalizeType(token)
	if r, ok := authorityRuleIdx[norm]; ok {
		return r, true
	}
	if r, ok := citationRuleIdx[norm]; ok {
		return r, true
	}
	return nil, false
}

// PropertyFor returns the output property for a relationship type
// token. Unknown tokens synthesize isiscb:<camelCased token> instead
// of failing.
func PropertyFor(token string) string {
	if r, ok := RuleFor(token); ok {
		return r.Primary
	}
	return "isiscb:" + CamelCase(NormalizeType(token))
}

// ClassURIFor returns the class of the relationship wrapper object for
// a relationship type token, with the same graceful fallback as
// PropertyFor.
func ClassURIFor(token string) string {
	if r, ok := RuleFor(token); ok {
		return r.URI
	}
	return "isiscb:" + CamelCase(NormalizeType(token))
}

// IsContributorLike reports whether a normalized relationship type is
// one of the person-contributor roles accumulated into dc:contributor.
func IsContributorLike(normType string) bool {
	_, ok := contributorLike[normType]
	return ok
}

var contributorLike = map[string]struct{}{
	"ADVISOR": {}, "CONTRIBUTOR": {}, "TRANSLATOR": {},
	"COMMITTEE_MEMBER": {}, "INTERVIEWER": {}, "GUEST": {},
	"WRITER": {}, "PERFORMER": {}, "RESEARCHER": {}, "DIRECTOR": {},
	"PRODUCER": {}, "ORGANIZER": {}, "HOST": {}, "COLLECTOR": {},
	"ARCHIVIST": {}, "DEVELOPER": {}, "COMPILER": {},
	"DISTRIBUTOR": {}, "PRESENTING_GROUP": {}, "AWARDEE": {},
	"OFFICER": {}, "MAINTAINING_INSTITUTION": {},
	"ARCHIVAL_REPOSITORY": {},
}
