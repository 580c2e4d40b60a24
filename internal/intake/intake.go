// Package intake turns loosely structured application input (free-text chat
// commands, partially filled forms) into clean application records. All of
// it is pure string work: no I/O, no clock reads, no panics. Parsing that
// fails simply leaves the field empty.
package intake

import (
	"strings"
	"time"
)

// Application statuses recognized on intake.
var validStatuses = map[string]bool{
	"applied":     true,
	"shortlisted": true,
	"interview":   true,
	"offer":       true,
	"rejected":    true,
}

// Application is a cleaned, transient record produced by normalization.
// Zero-valued optional fields mean "unknown"; Company is always non-empty
// for records that survive the pipeline.
type Application struct {
	Company   string    `json:"company"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	AppliedAt time.Time `json:"applied_at,omitzero"`
}

// RawInput is one loosely structured intake entry. Free text lands in
// Company; the other fields are honored when the caller already has them.
type RawInput struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	AppliedAt string `json:"applied_at"` // ISO date or a relative expression
}

// FromText wraps a bare string as a company-only input.
func FromText(s string) RawInput {
	return RawInput{Company: s}
}

// Normalize cleans a batch of raw inputs into application records.
// Comma lists of companies split into separate entries, each entry has its
// fields extracted and canonicalized, roles are backfilled across the batch
// when the evidence is unambiguous, and entries that never resolve to a
// company are dropped. The reference time anchors relative dates.
func Normalize(inputs []RawInput, now time.Time) []Application {
	var entries []RawInput
	for _, in := range inputs {
		entries = append(entries, splitCompanyList(in)...)
	}

	apps := make([]Application, 0, len(entries))
	for _, e := range entries {
		apps = append(apps, normalizeOne(e, now))
	}

	if len(apps) > 1 {
		backfillRoles(apps)
	}

	out := make([]Application, 0, len(apps))
	for _, a := range apps {
		if a.Company != "" {
			out = append(out, a)
		}
	}
	return out
}

// NormalizeTexts is Normalize over bare strings.
func NormalizeTexts(texts []string, now time.Time) []Application {
	inputs := make([]RawInput, 0, len(texts))
	for _, t := range texts {
		inputs = append(inputs, FromText(t))
	}
	return Normalize(inputs, now)
}

// splitCompanyList expands one input into several when its company text is
// a comma list where every segment independently looks like a company name.
// Role, notes and date extracted from the combined text are shared across
// the split entries.
func splitCompanyList(in RawInput) []RawInput {
	raw := strings.TrimSpace(in.Company)
	text := stripLeadingVerbs(raw)
	text, sharedRole := roleAtEnd(text)
	text = stripTrailingDate(text)

	if !strings.Contains(text, ",") {
		return []RawInput{in}
	}
	segments := strings.Split(text, ",")
	for i, seg := range segments {
		segments[i] = strings.TrimSpace(seg)
	}
	for _, seg := range segments {
		if !plausibleCompany(seg) {
			return []RawInput{in}
		}
	}

	sharedDate := in.AppliedAt
	if sharedDate == "" {
		sharedDate = dateExprNearApplyVerb(raw)
	}
	if in.Role != "" {
		sharedRole = in.Role
	}

	out := make([]RawInput, 0, len(segments))
	for _, seg := range segments {
		out = append(out, RawInput{
			Company:   seg,
			Role:      sharedRole,
			Status:    in.Status,
			Notes:     in.Notes,
			AppliedAt: sharedDate,
		})
	}
	return out
}

// normalizeOne runs the per-entry extraction cascades. For every field the
// first non-empty source wins, except that a generic role yields to a more
// specific candidate further down the cascade.
func normalizeOne(in RawInput, now time.Time) Application {
	raw := strings.TrimSpace(in.Company)
	text := stripLeadingVerbs(raw)

	dashCompany, dashRole, dashNotes, dashStatus := parseDashStructure(text)
	sentCompany, sentRole, sentNotes := parseSentence(raw)

	var app Application

	// Company cascade, then peel role, status and date leftovers off
	// whichever source won. A trailing resume clause belongs to notes,
	// not the company.
	companyText := text
	if clause := resumeClause(text); clause != "" {
		companyText = strings.TrimRight(strings.TrimSuffix(companyText, clause), " ,;-")
	}
	company := firstNonEmpty(dashCompany, sentCompany, companyFromAddSentence(raw), companyText)
	company, trailingRole := roleAtEnd(company)
	company, trailingStatus := stripTrailingStatus(sanitizeCompany(company))
	company = stripTrailingDate(company)
	app.Company = canonicalCompany(company)

	// Role cascade, generic labels superseded by anything specific.
	app.Role = pickRole(
		canonicalRole(in.Role),
		dashRole,
		sentRole,
		trailingRole,
		extractRole(raw),
		extractRole(in.Notes),
	)

	// Notes merge with containment dedup.
	notes := mergeNotes(in.Notes, dashNotes)
	notes = mergeNotes(notes, sentNotes)
	notes = mergeNotes(notes, stripTrailingDate(resumeClause(raw)))
	app.Notes = canonicalNotes(notes)

	// Status.
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if !validStatuses[status] {
		status = firstNonEmpty(dashStatus, trailingStatus)
	}
	app.Status = status

	// Application date.
	if in.AppliedAt != "" {
		if t, ok := ParseRelativeDate(in.AppliedAt, now); ok {
			app.AppliedAt = t
		}
	}
	if app.AppliedAt.IsZero() {
		if expr := dateExprNearApplyVerb(raw); expr != "" {
			if t, ok := ParseRelativeDate(expr, now); ok {
				app.AppliedAt = t
			}
		}
	}

	return app
}

// pickRole returns the first specific candidate, falling back to the first
// non-empty one when every candidate is generic.
func pickRole(candidates ...string) string {
	first := ""
	for _, c := range candidates {
		c = canonicalRole(c)
		if c == "" {
			continue
		}
		if !isGenericRole(c) {
			return c
		}
		if first == "" {
			first = c
		}
	}
	return first
}

// backfillRoles applies the batch-level role rules: a single distinct
// specific role wins over missing or generic roles everywhere; failing
// that, a single distinct role of any kind fills only the gaps; any other
// mix of evidence leaves every entry untouched.
func backfillRoles(apps []Application) {
	specific := map[string]bool{}
	all := map[string]bool{}
	defined := 0
	for _, a := range apps {
		if a.Role == "" {
			continue
		}
		defined++
		all[a.Role] = true
		if !isGenericRole(a.Role) {
			specific[a.Role] = true
		}
	}

	if len(specific) == 1 {
		var role string
		for r := range specific {
			role = r
		}
		for i := range apps {
			if apps[i].Role == "" || isGenericRole(apps[i].Role) {
				apps[i].Role = role
			}
		}
		return
	}

	if len(specific) == 0 && len(all) == 1 && defined < len(apps) {
		var role string
		for r := range all {
			role = r
		}
		for i := range apps {
			if apps[i].Role == "" {
				apps[i].Role = role
			}
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
