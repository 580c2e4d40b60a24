package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dev", "Developer"},
		{"ios dev", "iOS Developer"},
		{"backend dev role", "Backend Developer"},
		{"ios engineer", "iOS Engineer"},
		{"sde-2", "SDE2"},
		{"l5 position", "L5"},
		{"ml engineer", "ML Engineer"},
		{"senior backend engineer", "Senior Backend Engineer"},
		{"head of engineering", "Head of Engineering"},
		{"QA Engineer", "QA Engineer"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, canonicalRole(tc.in), "input %q", tc.in)
	}
}

func TestRoleAtEnd(t *testing.T) {
	rest, role := roleAtEnd("google sde2")
	assert.Equal(t, "google", rest)
	assert.Equal(t, "SDE2", role)

	rest, role = roleAtEnd("amazon - backend developer role")
	assert.Equal(t, "amazon", rest)
	assert.Equal(t, "Backend Developer", role)

	// A role in the middle of the text is not a suffix.
	rest, role = roleAtEnd("sde openings at google")
	assert.Equal(t, "sde openings at google", rest)
	assert.Empty(t, role)
}
