package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

func TestLooksLikeInterview(t *testing.T) {
	assert.True(t, looksLikeInterview("Interview with Stripe"))
	assert.True(t, looksLikeInterview("Technical Round 2 - Zomato"))
	assert.True(t, looksLikeInterview("Phone screening: Backend role"))
	assert.False(t, looksLikeInterview("Dentist appointment"))
	assert.False(t, looksLikeInterview("Team standup"))
}

func TestEventStartDate(t *testing.T) {
	ev := &calendar.Event{Start: &calendar.EventDateTime{DateTime: "2026-09-10T14:00:00Z"}}
	got, ok := eventStartDate(ev)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), got.UTC())

	ev = &calendar.Event{Start: &calendar.EventDateTime{Date: "2026-09-10"}}
	got, ok = eventStartDate(ev)
	require.True(t, ok)
	assert.Equal(t, 10, got.Day())

	_, ok = eventStartDate(&calendar.Event{})
	assert.False(t, ok)

	_, ok = eventStartDate(&calendar.Event{Start: &calendar.EventDateTime{DateTime: "not-a-date"}})
	assert.False(t, ok)
}

func TestRetryWrapsLastError(t *testing.T) {
	sentinel := errors.New("calendar unreachable")
	calls := 0
	err := retry(3, time.Millisecond, func() error {
		calls++
		return sentinel
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, sentinel)

	assert.NoError(t, retry(3, time.Millisecond, func() error { return nil }))

	// Token expiry fails fast without retrying.
	calls = 0
	err = retry(3, time.Millisecond, func() error {
		calls++
		return &googleapi.Error{Code: 410}
	})
	assert.Equal(t, 1, calls)
	assert.True(t, isSyncTokenExpiredError(err))
}

func TestIsSyncTokenExpiredError(t *testing.T) {
	assert.True(t, isSyncTokenExpiredError(&googleapi.Error{Code: 410}))
	assert.False(t, isSyncTokenExpiredError(&googleapi.Error{Code: 404}))
	assert.False(t, isSyncTokenExpiredError(assert.AnError))
}
