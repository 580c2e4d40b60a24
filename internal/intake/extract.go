package intake

import (
	"regexp"
	"strings"
)

var (
	leadingVerbRe = regexp.MustCompile(`(?i)^(?:i\s+(?:just\s+)?)?(?:applied|applying|submitted(?:\s+(?:my\s+)?resume)?|sent(?:\s+(?:my\s+)?resume)?|add(?:ed)?\s+(?:an?\s+|new\s+)?application|track(?:ing)?)\s*(?:for|to|at|in)?\s+`)

	dashSplitRe     = regexp.MustCompile(`\s+[-–]\s+`)
	notesFragmentRe = regexp.MustCompile(`(?i)[\s,-]*\bnotes?\s*:\s*`)

	forRoleAtRe = regexp.MustCompile(`(?i)\bfor\s+(?:an?\s+|the\s+)?(.{1,60}?)\s+(?:role|position|opening|profile)\s+(?:at|in|with)\s+(.+)$`)
	asRoleAtRe  = regexp.MustCompile(`(?i)\bas\s+(?:an?\s+)?(.{1,60}?)\s+(?:at|in|with)\s+(.+)$`)
	atForRoleRe = regexp.MustCompile(`(?i)\b(?:at|to|with)\s+(.{1,60}?)\s+for\s+(?:an?\s+|the\s+)?(.{1,60}?)\s+(?:role|position|opening|profile)\b\s*(.*)$`)

	addApplicationRe = regexp.MustCompile(`(?i)\badd(?:ed)?\s+(?:an?\s+|new\s+)?application\s+for\s+(.+)$`)

	trailingStatusRe = regexp.MustCompile(`(?i)[\s,(-]+(applied|shortlisted|interview(?:ing|ed)?|offer(?:ed)?|rejected)\)?[\s.!]*$`)
	trailingDateRe   = regexp.MustCompile(`(?i)[\s,]+(?:on\s+)?(?:` + dateExprPattern + `)[\s.!]*$`)

	applyDateRe = regexp.MustCompile(`(?i)\b(?:applied|applying|submitted|sent)\b[^.;]*?\b(?:on\s+)?(` + dateExprPattern + `)\b`)

	resumeClauseRe = regexp.MustCompile(`(?i).+?[,;-]\s*((?:sent|submitted|shared)\s+(?:my\s+)?resume\b.*)$`)

	companyCharsRe = regexp.MustCompile(`^[A-Za-z0-9 .&'/()\-]+$`)
)

// companyStopwords disqualify a comma-list segment from being read as a
// company name: verbs, prepositions and role/status vocabulary.
var companyStopwords = map[string]bool{
	"and": true, "or": true, "the": true, "for": true, "with": true,
	"at": true, "in": true, "on": true, "to": true, "a": true, "an": true,
	"my": true, "applied": true, "sent": true, "submitted": true,
	"resume": true, "via": true, "through": true, "role": true,
	"position": true, "interview": true, "said": true,
}

// statusCanon folds verb forms onto the status enum.
var statusCanon = map[string]string{
	"applied":      "applied",
	"shortlisted":  "shortlisted",
	"interview":    "interview",
	"interviewing": "interview",
	"interviewed":  "interview",
	"offer":        "offer",
	"offered":      "offer",
	"rejected":     "rejected",
}

// stripLeadingVerbs removes a leading apply-verb phrase ("applied for",
// "submitted resume to", "track") from free text.
func stripLeadingVerbs(text string) string {
	return strings.TrimSpace(leadingVerbRe.ReplaceAllString(strings.TrimSpace(text), ""))
}

// parseDashStructure reads the "Company - Role - Notes: ..." shorthand.
// The second segment counts as a role only when it reads like one; segments
// that are bare status keywords surface as the status instead of notes.
func parseDashStructure(text string) (company, role, notes, status string) {
	parts := dashSplitRe.Split(text, -1)
	if len(parts) < 2 {
		return "", "", "", ""
	}
	company = strings.TrimSpace(parts[0])

	var noteParts []string
	for i, seg := range parts[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if s, ok := statusCanon[strings.ToLower(strings.TrimRight(seg, ".! "))]; ok {
			status = s
			continue
		}
		if i == 0 && role == "" {
			if r, ok := segmentAsRole(seg); ok {
				role = r
				continue
			}
		}
		noteParts = append(noteParts, notesFragmentRe.ReplaceAllString(seg, ""))
	}
	notes = strings.TrimSpace(strings.Join(noteParts, ". "))
	return company, role, notes, status
}

// segmentAsRole decides whether a dash segment is a role label, either by
// its "role"/"position" suffix or by matching a role pattern outright.
func segmentAsRole(seg string) (string, bool) {
	trimmed := strings.TrimSpace(seg)
	hadSuffix := roleSuffixRe.MatchString(trimmed)
	stripped := strings.TrimSpace(roleSuffixRe.ReplaceAllString(trimmed, ""))
	if stripped == "" {
		return "", false
	}
	if hadSuffix && len(strings.Fields(stripped)) <= 4 {
		return canonicalRole(stripped), true
	}
	for _, re := range []*regexp.Regexp{titledRoleRe, levelRoleRe, bareRoleRe} {
		loc := re.FindStringIndex(stripped)
		if loc == nil {
			continue
		}
		if strings.TrimSpace(stripped[:loc[0]]) == "" && strings.TrimSpace(stripped[loc[1]:]) == "" {
			return canonicalRole(stripped), true
		}
	}
	return "", false
}

// parseSentence reads "for <role> position at <company>" sentences and the
// inverse "at <company> for <role> role" order. A trailing clause after the
// company becomes notes.
func parseSentence(raw string) (company, role, notes string) {
	if m := forRoleAtRe.FindStringSubmatch(raw); m != nil {
		head, tail := cutClause(m[2])
		return head, canonicalRole(m[1]), tail
	}
	if m := atForRoleRe.FindStringSubmatch(raw); m != nil {
		notes = strings.TrimSpace(strings.TrimLeft(m[3], ",;- "))
		return strings.TrimSpace(m[1]), canonicalRole(m[2]), notes
	}
	if m := asRoleAtRe.FindStringSubmatch(raw); m != nil {
		head, tail := cutClause(m[2])
		return head, canonicalRole(m[1]), tail
	}
	return "", "", ""
}

// companyFromAddSentence reads "add application for X" sentences, peeling
// any role suffix off the captured text.
func companyFromAddSentence(raw string) string {
	m := addApplicationRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	company, _ := roleAtEnd(strings.TrimSpace(m[1]))
	return company
}

// cutClause splits "google, recruiter reached out" into the company head
// and the trailing clause.
func cutClause(s string) (string, string) {
	if i := strings.IndexAny(s, ",;"); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(strings.TrimLeft(s[i+1:], ",; "))
	}
	return strings.TrimSpace(s), ""
}

// sanitizeCompany strips pipe-delimited trailers, trailing "Notes:"
// fragments and stray punctuation from a company candidate.
func sanitizeCompany(s string) string {
	if i := strings.Index(s, "|"); i >= 0 {
		s = s[:i]
	}
	if loc := notesFragmentRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return strings.Trim(s, " -,.;:")
}

// stripTrailingStatus peels a trailing status keyword off a company string,
// returning the cleaned text and the canonical status.
func stripTrailingStatus(s string) (string, string) {
	m := trailingStatusRe.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	cleaned := strings.TrimSpace(trailingStatusRe.ReplaceAllString(s, ""))
	if cleaned == "" {
		return s, ""
	}
	return cleaned, statusCanon[strings.ToLower(m[1])]
}

// stripTrailingDate removes a trailing date expression ("yesterday",
// "on 2025-01-05", "next friday") from a company candidate.
func stripTrailingDate(s string) string {
	cleaned := strings.TrimSpace(trailingDateRe.ReplaceAllString(s, ""))
	if cleaned == "" {
		return s
	}
	return cleaned
}

// plausibleCompany reports whether a comma-list segment independently looks
// like a company name: short, a restricted charset, no verb or preposition
// vocabulary.
func plausibleCompany(seg string) bool {
	words := strings.Fields(seg)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	if !companyCharsRe.MatchString(seg) {
		return false
	}
	for _, w := range words {
		if companyStopwords[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

// canonicalCompany collapses whitespace and capitalizes all-lowercase
// tokens, leaving existing mixed casing and mid-phrase connectors alone.
func canonicalCompany(s string) string {
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		if i > 0 && connectorWords[lower] {
			tokens[i] = lower
			continue
		}
		tokens[i] = titleToken(tok)
	}
	return strings.Join(tokens, " ")
}

// mergeNotes combines two note strings with substring-containment dedup:
// when one contains the other the longer wins, otherwise they concatenate.
func mergeNotes(a, b string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if strings.Contains(la, lb) {
		return a
	}
	if strings.Contains(lb, la) {
		return b
	}
	return strings.TrimSuffix(a, ".") + ". " + b
}

// notesAcronyms are shorthand tokens kept uppercase in notes.
var notesAcronyms = map[string]string{
	"hr": "HR", "lpa": "LPA", "ctc": "CTC", "usd": "USD",
	"inr": "INR", "asap": "ASAP", "yoe": "YOE", "oa": "OA",
	"wfh": "WFH", "hm": "HM",
}

// canonicalNotes uppercases known acronyms and capitalizes the first word.
func canonicalNotes(s string) string {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ""
	}
	for i, tok := range tokens {
		core := strings.TrimRight(tok, ".,;:!)")
		suffix := tok[len(core):]
		if up, ok := notesAcronyms[strings.ToLower(core)]; ok {
			tokens[i] = up + suffix
		}
	}
	tokens[0] = titleToken(tokens[0])
	return strings.Join(tokens, " ")
}

// resumeClause captures a trailing "sent resume ..." clause as notes, but
// only when it follows other content; a message that is nothing but the
// clause is company material, not notes.
func resumeClause(raw string) string {
	m := resumeClauseRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// dateExprNearApplyVerb finds a date expression in the vicinity of an
// apply-verb ("applied on 2025-03-01", "sent resume yesterday").
func dateExprNearApplyVerb(raw string) string {
	m := applyDateRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}
