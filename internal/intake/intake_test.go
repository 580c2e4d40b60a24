package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC) // a Tuesday

func TestNormalizeTrimsBareCompany(t *testing.T) {
	got := NormalizeTexts([]string{" Google "}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, Application{Company: "Google"}, got[0])
}

func TestNormalizeDashStructuredMessage(t *testing.T) {
	got := NormalizeTexts([]string{"Applied for zee5 - sdet role - hr said 12 lpa budget"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Zee5", got[0].Company)
	assert.Equal(t, "SDET", got[0].Role)
	assert.Equal(t, "HR said 12 LPA budget", got[0].Notes)
}

func TestNormalizeSentenceRoleAtCompany(t *testing.T) {
	got := NormalizeTexts([]string{"applied for sde role at google yesterday"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Google", got[0].Company)
	assert.Equal(t, "SDE", got[0].Role)
	assert.True(t, got[0].AppliedAt.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeInverseSentenceWithTrailingNotes(t *testing.T) {
	got := NormalizeTexts([]string{"applied at zomato for backend engineer role, hr said budget is 20 lpa"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Zomato", got[0].Company)
	assert.Equal(t, "Backend Engineer", got[0].Role)
	assert.Equal(t, "HR said budget is 20 LPA", got[0].Notes)
}

func TestNormalizeSplitsCommaList(t *testing.T) {
	got := NormalizeTexts([]string{"Applied for google, amazon, zee5 - sde role"}, testNow)
	require.Len(t, got, 3)
	assert.Equal(t, "Google", got[0].Company)
	assert.Equal(t, "Amazon", got[1].Company)
	assert.Equal(t, "Zee5", got[2].Company)
	for _, app := range got {
		assert.Equal(t, "SDE", app.Role)
	}
}

func TestNormalizeDoesNotSplitImplausibleList(t *testing.T) {
	// Second segment carries verb vocabulary, so the comma is a clause
	// boundary rather than a list.
	got := NormalizeTexts([]string{"stripe, sent my resume through a referral"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Stripe", got[0].Company)
	assert.Equal(t, "Sent my resume through a referral", got[0].Notes)
}

func TestNormalizeTrailingStatusKeyword(t *testing.T) {
	got := NormalizeTexts([]string{"Microsoft rejected"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Microsoft", got[0].Company)
	assert.Equal(t, "rejected", got[0].Status)
}

func TestNormalizeDashStatusSegment(t *testing.T) {
	got := NormalizeTexts([]string{"Google - rejected"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Google", got[0].Company)
	assert.Equal(t, "rejected", got[0].Status)
	assert.Empty(t, got[0].Notes)
}

func TestNormalizeStripsPipeTrailer(t *testing.T) {
	got := NormalizeTexts([]string{"Stripe | Careers page"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Stripe", got[0].Company)
}

func TestNormalizeDropsEmptyCompany(t *testing.T) {
	got := NormalizeTexts([]string{"   ", "Google"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Google", got[0].Company)
}

func TestBackfillSingleSpecificRoleWins(t *testing.T) {
	got := Normalize([]RawInput{
		{Company: "A", Role: "ML Engineer"},
		{Company: "B"},
		{Company: "C", Role: "Software Engineer"},
	}, testNow)
	require.Len(t, got, 3)
	assert.Equal(t, "ML Engineer", got[0].Role)
	assert.Equal(t, "ML Engineer", got[1].Role)
	assert.Equal(t, "ML Engineer", got[2].Role)
}

func TestBackfillLeavesDistinctSpecificRolesAlone(t *testing.T) {
	got := Normalize([]RawInput{
		{Company: "X", Role: "Backend Engineer"},
		{Company: "Y", Role: "Data Scientist"},
	}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "Backend Engineer", got[0].Role)
	assert.Equal(t, "Data Scientist", got[1].Role)
}

func TestBackfillSingleGenericRoleFillsGapsOnly(t *testing.T) {
	got := Normalize([]RawInput{
		{Company: "X", Role: "SDE"},
		{Company: "Y"},
	}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "SDE", got[0].Role)
	assert.Equal(t, "SDE", got[1].Role)
}

func TestBackfillSkipsSingleEntryBatch(t *testing.T) {
	got := Normalize([]RawInput{{Company: "Solo", Role: "SDE"}}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "SDE", got[0].Role)
}

func TestNormalizeExplicitFieldsPassThrough(t *testing.T) {
	applied := "2026-08-20"
	got := Normalize([]RawInput{{
		Company:   "Netflix",
		Role:      "sde-2",
		Status:    "Shortlisted",
		Notes:     "referred by a friend",
		AppliedAt: applied,
	}}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Netflix", got[0].Company)
	assert.Equal(t, "SDE2", got[0].Role)
	assert.Equal(t, "shortlisted", got[0].Status)
	assert.Equal(t, "Referred by a friend", got[0].Notes)
	assert.True(t, got[0].AppliedAt.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Applied for zee5 - sdet role - hr said 12 lpa budget",
		"applied for sde role at google yesterday",
		" Stripe ",
	}
	first := NormalizeTexts(inputs, testNow)

	again := make([]RawInput, 0, len(first))
	for _, app := range first {
		in := RawInput{
			Company: app.Company,
			Role:    app.Role,
			Status:  app.Status,
			Notes:   app.Notes,
		}
		if !app.AppliedAt.IsZero() {
			in.AppliedAt = app.AppliedAt.Format("2006-01-02")
		}
		again = append(again, in)
	}

	second := Normalize(again, testNow)
	assert.Equal(t, first, second)
}

func TestNormalizeNeverPanicsOnJunk(t *testing.T) {
	junk := []string{
		"", "-", "|||", ",,,,", "applied", "notes:", "for at in with",
		"🚀🚀🚀", "a - b - c - d - e - f - g",
	}
	assert.NotPanics(t, func() {
		NormalizeTexts(junk, testNow)
	})
}

func TestMergeNotesContainmentDedup(t *testing.T) {
	assert.Equal(t, "HR said 12 LPA budget", mergeNotes("HR said 12 LPA budget", "12 lpa"))
	assert.Equal(t, "recruiter call friday", mergeNotes("call friday", "recruiter call friday"))
	assert.Equal(t, "first. second", mergeNotes("first.", "second"))
	assert.Equal(t, "only", mergeNotes("", "only"))
}
