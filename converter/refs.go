package converter

import "strings"

// refMapping defines a prefix substitution for $ref rewriting.
type refMapping struct {
	from string
	to   string
}

// refMappings maps OpenAPI 3.0 component $ref prefixes to their Swagger 2.0
// locations. Request bodies have no Swagger 2.0 section, so their references
// move under an extension prefix.
var refMappings = []refMapping{
	{"#/components/schemas/", "#/definitions/"},
	{"#/components/parameters/", "#/parameters/"},
	{"#/components/responses/", "#/responses/"},
	{"#/components/requestBodies/", "#/x-requestBodies/"},
	{"#/components/securitySchemes/", "#/securityDefinitions/"},
}

// RewriteRef rewrites an OpenAPI 3.0 component reference to its Swagger 2.0
// location. References matching no known prefix (external files, unknown
// component sections) pass through unchanged. The rewrite is purely textual:
// the target is never resolved or checked for existence.
func RewriteRef(ref string) string {
	for _, m := range refMappings {
		if strings.HasPrefix(ref, m.from) {
			return m.to + ref[len(m.from):]
		}
	}
	return ref
}
