package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jobpilot/jobpilot/internal/models"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"gorm.io/gorm"
)

// interviewKeywords gate which calendar events the watcher even considers.
var interviewKeywords = []string{"interview", "screening", "onsite", "technical round", "hiring manager"}

type CalendarService struct {
	DB       *gorm.DB
	Apps     *ApplicationService
	Sprints  *SprintService
	Calendar *calendar.Service
}

func NewCalendarService(db *gorm.DB, apps *ApplicationService, sprints *SprintService, cal *calendar.Service) *CalendarService {
	return &CalendarService{DB: db, Apps: apps, Sprints: sprints, Calendar: cal}
}

// StartWatcher starts the background polling loop. Runs once immediately,
// then every 15 minutes. Without a calendar client only the sprint expiry
// sweep runs.
func (s *CalendarService) StartWatcher() {
	if s.Calendar == nil {
		log.Println("⚠️  Calendar watcher disabled (no client). Sprint expiry sweep still active.")
	}

	ticker := time.NewTicker(15 * time.Minute)

	go s.Sync()

	go func() {
		for range ticker.C {
			s.Sync()
		}
	}()
}

// Sync is the main orchestrator: sweep expired sprints, then pull new
// calendar events and turn confirmed interviews into sprints.
func (s *CalendarService) Sync() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	if swept, err := s.Sprints.ExpireOverdue(now); err != nil {
		log.Printf("❌ Sprint expiry sweep failed: %v", err)
	} else if swept > 0 {
		log.Printf("🔖 Marked %d sprint(s) expired", swept)
	}

	if s.Calendar == nil {
		return
	}

	log.Println("📅 Calendar Watcher: Starting Sync Cycle...")

	var user models.User
	if err := s.DB.First(&user).Error; err != nil {
		user = models.User{Email: "default"}
		s.DB.Create(&user)
	}

	events, nextToken, err := s.fetchEvents(ctx, user.CalendarSyncToken, now)
	if err != nil && isSyncTokenExpiredError(err) {
		log.Println("⚠️  Sync token expired. Falling back to full sync.")
		events, nextToken, err = s.fetchEvents(ctx, "", now)
	}
	if err != nil {
		log.Printf("❌ Calendar sync failed: %v", err)
		return
	}

	if len(events) == 0 {
		log.Println("✅ No new calendar events.")
		s.saveSyncToken(&user, nextToken)
		return
	}

	log.Printf("📥 Processing %d candidate event(s)...", len(events))
	for _, ev := range events {
		var count int64
		s.DB.Model(&models.ProcessedEvent{}).Where("id = ?", ev.Id).Count(&count)
		if count > 0 {
			continue
		}
		s.processEvent(now, ev)
		s.DB.Create(&models.ProcessedEvent{ID: ev.Id})
	}

	s.saveSyncToken(&user, nextToken)
}

// fetchEvents lists primary-calendar events, incrementally via the stored
// sync token or, on the first run, from now forward. Pagination is
// followed until the API hands back the next sync token.
func (s *CalendarService) fetchEvents(ctx context.Context, syncToken string, now time.Time) ([]*calendar.Event, string, error) {
	var all []*calendar.Event
	pageToken := ""
	nextSyncToken := ""

	for {
		var resp *calendar.Events
		err := retry(3, 1*time.Second, func() error {
			call := s.Calendar.Events.List("primary").SingleEvents(true).MaxResults(100)
			if syncToken != "" {
				call = call.SyncToken(syncToken)
			} else {
				call = call.TimeMin(now.Format(time.RFC3339))
			}
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var e error
			resp, e = call.Context(ctx).Do()
			return e
		})
		if err != nil {
			return nil, "", err
		}

		all = append(all, resp.Items...)
		if resp.NextPageToken == "" {
			nextSyncToken = resp.NextSyncToken
			break
		}
		pageToken = resp.NextPageToken
	}
	return all, nextSyncToken, nil
}

// processEvent contains the business logic: keyword gate -> company match
// -> application lookup -> status move + sprint generation.
func (s *CalendarService) processEvent(now time.Time, ev *calendar.Event) {
	if ev.Status == "cancelled" || ev.Summary == "" {
		return
	}

	shortSum := ev.Summary
	if len(shortSum) > 20 {
		shortSum = shortSum[:20] + "..."
	}
	logPrefix := fmt.Sprintf("[Event: %s]", shortSum)

	if !looksLikeInterview(ev.Summary) {
		return
	}
	log.Printf("%s 📥 START processing", logPrefix)

	company := s.matchCompany(ev)
	if company == nil {
		log.Printf("%s ❌ SKIPPED: no tracked company matches summary/organizer.", logPrefix)
		return
	}
	log.Printf("%s ✅ MATCHED Company: %s", logPrefix, company.Name)

	app, err := s.Apps.ActiveForCompany(company.ID)
	if err != nil {
		log.Printf("%s ❌ SKIPPED: no active application for %s.", logPrefix, company.Name)
		return
	}

	interviewDate, ok := eventStartDate(ev)
	if !ok {
		log.Printf("%s ❌ SKIPPED: event has no usable start date.", logPrefix)
		return
	}

	if app.Status != models.StatusInterview {
		details := fmt.Sprintf("Interview confirmed via calendar event %q on %s", ev.Summary, interviewDate.Format("2006-01-02"))
		if _, err := s.Apps.MoveStatus(app.ID, models.StatusInterview, details); err != nil {
			log.Printf("%s ❌ Status move failed: %v", logPrefix, err)
			return
		}
		log.Printf("%s ⚡ Moved %s to interview", logPrefix, company.Name)
	}

	sprint, err := s.Sprints.CreateForApplication(app, interviewDate, "", now)
	if err != nil {
		log.Printf("%s ❌ Sprint generation failed: %v", logPrefix, err)
		return
	}
	log.Printf("%s ✅ Sprint %s ready (%d days)", logPrefix, sprint.ID, sprint.TotalDays)
}

// matchCompany tries the event summary and organizer against every tracked
// company. Very short names are skipped to avoid false positives.
func (s *CalendarService) matchCompany(ev *calendar.Event) *models.Company {
	summary := strings.ToLower(ev.Summary)
	organizerName := ""
	organizerAddr := ""
	if ev.Organizer != nil {
		organizerName = strings.ToLower(ev.Organizer.DisplayName)
		organizerAddr = strings.ToLower(ev.Organizer.Email)
	}

	var companies []models.Company
	s.DB.Find(&companies)
	for i, company := range companies {
		name := strings.ToLower(company.Name)
		if len(name) < 3 {
			continue
		}
		if strings.Contains(summary, name) {
			return &companies[i]
		}
		if organizerName != "" && strings.Contains(organizerName, name) {
			return &companies[i]
		}
		if parts := strings.Split(organizerAddr, "@"); len(parts) == 2 {
			if strings.Contains(parts[1], name) {
				return &companies[i]
			}
		}
	}
	return nil
}

func (s *CalendarService) saveSyncToken(user *models.User, token string) {
	if token == "" || token == user.CalendarSyncToken {
		return
	}
	s.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("calendar_sync_token", token)
	log.Printf("🔖 Sync token updated")
}

// --- HELPERS ---

func looksLikeInterview(summary string) bool {
	lower := strings.ToLower(summary)
	for _, kw := range interviewKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// eventStartDate reads the start of an event, which the API gives either
// as a timed RFC3339 value or an all-day date.
func eventStartDate(ev *calendar.Event) (time.Time, bool) {
	if ev.Start == nil {
		return time.Time{}, false
	}
	if ev.Start.DateTime != "" {
		t, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err == nil {
			return t, true
		}
	}
	if ev.Start.Date != "" {
		t, err := time.Parse("2006-01-02", ev.Start.Date)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// retry executes a function with exponential backoff. Token expiry fails
// fast so the caller can switch to a full sync.
func retry(attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = f()
		if err == nil {
			return nil
		}
		if isSyncTokenExpiredError(err) {
			return err
		}
		log.Printf("⚠️  API Error: %v. Retrying in %v...", err, sleep)
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

// isSyncTokenExpiredError reports the 410 Gone the Calendar API returns
// when a sync token is too old.
func isSyncTokenExpiredError(err error) bool {
	if gErr, ok := err.(*googleapi.Error); ok {
		return gErr.Code == 410
	}
	return false
}
