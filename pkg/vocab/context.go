package vocab

// ContextDocument produces the shared @context block for all produced
// JSON-LD documents: namespace prefixes, field-mapping aliases, and
// relationship-rule aliases. The output depends only on the static
// tables, so repeated calls always yield an equal map.
func ContextDocument() map[string]any {
	ctx := make(map[string]any)

	for _, ns := range Namespaces {
		ctx[ns.Prefix] = ns.URI
	}

	for _, fm := range FieldMappings {
		for _, eq := range fm.Equivalents {
			ctx[eq] = map[string]any{"@id": fm.Primary}
		}
	}

	addRules := func(rules []Rule) {
		for _, r := range rules {
			if r.SubPropertyOf != "" {
				// SubPropertyOf wins over equivalents for the same rule;
				// only the narrower-than relation is emitted.
				ctx[r.Primary] = map[string]any{
					"@id":                r.Primary,
					"rdfs:subPropertyOf": r.SubPropertyOf,
				}
				continue
			}
			for _, eq := range r.Equivalents {
				if _, ok := ctx[eq]; !ok {
					ctx[eq] = map[string]any{"@id": r.Primary}
				}
			}
		}
	}
	addRules(AuthorityRules)
	addRules(CitationRules)

	return ctx
}
