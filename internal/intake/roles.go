package intake

import (
	"regexp"
	"strings"
)

// genericRoles are labels too vague to be worth keeping when anything more
// specific is available in the same entry or batch.
var genericRoles = map[string]bool{
	"software engineer": true,
	"developer":         true,
	"engineer":          true,
	"sde":               true,
	"swe":               true,
}

var (
	// Titled roles like "Senior Backend Engineer" or "ML Engineer".
	titledRoleRe = regexp.MustCompile(`(?i)\b(?:(?:senior|junior|staff|principal|lead|associate)\s+)?(?:backend|back\s?end|frontend|front\s?end|full\s?stack|software|ml|ai|data|devops|platform|mobile|ios|android|cloud|security|qa|embedded|machine\s+learning|site\s+reliability|product|program)\s+(?:engineer|developer|scientist|analyst|architect|manager)\b`)

	// Level tokens like SDE2, sde-2, L5, IC3.
	levelRoleRe = regexp.MustCompile(`(?i)\b(sde|sdet|swe|mts|ic|l|e)[\s-]?(\d)\b`)

	// Bare acronym roles.
	bareRoleRe = regexp.MustCompile(`(?i)\b(sde|sdet|swe|devops|qa)\b`)

	// Trailing "role"/"position" qualifier words.
	roleSuffixRe = regexp.MustCompile(`(?i)\s+(role|position|profile|opening)s?$`)

	compactLevelRe = regexp.MustCompile(`(?i)^(sde|sdet|swe|mts|ic|l|e)[\s-]?(\d+)$`)
)

// acronymTokens are role tokens kept fully uppercase.
var acronymTokens = map[string]bool{
	"ml": true, "ai": true, "sde": true, "sdet": true,
	"swe": true, "qa": true, "sre": true, "pm": true,
}

// connectorWords stay lowercase mid-phrase.
var connectorWords = map[string]bool{
	"of": true, "and": true, "for": true, "to": true, "the": true,
}

// extractRole pulls the most specific role mention out of free text.
// Returns "" when nothing role-like is present.
func extractRole(text string) string {
	if m := titledRoleRe.FindString(text); m != "" {
		return canonicalRole(m)
	}
	if m := levelRoleRe.FindString(text); m != "" {
		return canonicalRole(m)
	}
	if m := bareRoleRe.FindString(text); m != "" {
		return canonicalRole(m)
	}
	return ""
}

// roleAtEnd matches a role phrase at the very end of text, returning the
// text with the role removed plus the canonical role. Used to peel role
// suffixes off company strings ("google sde2" -> "google", "SDE2").
func roleAtEnd(text string) (string, string) {
	trimmed := roleSuffixRe.ReplaceAllString(strings.TrimSpace(text), "")
	for _, re := range []*regexp.Regexp{titledRoleRe, levelRoleRe, bareRoleRe} {
		loc := re.FindStringIndex(trimmed)
		if loc == nil {
			continue
		}
		// Only a suffix match counts; a role in the middle of the text is
		// handled by the sentence parsers instead.
		if strings.TrimSpace(trimmed[loc[1]:]) != "" {
			continue
		}
		rest := strings.TrimSpace(strings.TrimRight(trimmed[:loc[0]], " ,:-"))
		if rest == "" {
			continue
		}
		return rest, canonicalRole(trimmed[loc[0]:loc[1]])
	}
	return text, ""
}

// canonicalRole normalizes casing and tokens of a role label:
// level tokens compact and uppercase (sde-2 -> SDE2), "dev" expands to
// Developer, known acronyms uppercase, "ios" becomes iOS, everything else
// title-cased with connectors left lowercase mid-phrase.
func canonicalRole(s string) string {
	s = roleSuffixRe.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return ""
	}
	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		switch {
		case compactLevelRe.MatchString(tok):
			m := compactLevelRe.FindStringSubmatch(tok)
			out = append(out, strings.ToUpper(m[1]+m[2]))
		case lower == "dev":
			out = append(out, "Developer")
		case lower == "ios":
			out = append(out, "iOS")
		case acronymTokens[lower]:
			out = append(out, strings.ToUpper(lower))
		case i > 0 && connectorWords[lower]:
			out = append(out, lower)
		default:
			out = append(out, titleToken(tok))
		}
	}
	return strings.Join(out, " ")
}

// isGenericRole reports whether a canonical role is one of the vague
// synonyms that a more specific label should supersede.
func isGenericRole(role string) bool {
	return genericRoles[strings.ToLower(role)]
}

// titleToken capitalizes an all-lowercase token and leaves tokens with any
// existing uppercase (McKinsey, iOS) alone.
func titleToken(tok string) string {
	if tok == strings.ToLower(tok) {
		r := []rune(tok)
		return strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return tok
}
