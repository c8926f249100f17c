package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maintenanceDraftPrefix = "draft:tech:"
	reportDraftPrefix      = "draft:report:"

	// DefaultDraftTTL is how long an unsubmitted draft survives. Every save
	// resets the clock; loads do not.
	DefaultDraftTTL = 24 * time.Hour
)

// MaintenanceDraft is a technician's in-progress completion submission. It is
// a UX convenience only and never a source of truth for ticket state.
type MaintenanceDraft struct {
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// ReportDraft is a reporter's in-progress damage report form.
type ReportDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Priority    string   `json:"priority"`
	Images      []string `json:"images"`
}

// DraftStore provides redis-backed draft storage with per-key expiry.
// Writes are last-write-wins; only the owning user ever writes their key.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a new DraftStore. A non-positive ttl falls back to
// DefaultDraftTTL.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{client: client, ttl: ttl}
}

// SaveMaintenanceDraft upserts the technician's draft for a ticket and
// resets its expiry.
func (s *DraftStore) SaveMaintenanceDraft(ctx context.Context, userID, ticketID uint, draft *MaintenanceDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal maintenance draft: %w", err)
	}

	key := maintenanceDraftKey(userID, ticketID)
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store maintenance draft: %w", err)
	}

	return nil
}

// GetMaintenanceDraft returns the draft or nil when absent or expired.
// Loading does not extend the TTL.
func (s *DraftStore) GetMaintenanceDraft(ctx context.Context, userID, ticketID uint) (*MaintenanceDraft, error) {
	key := maintenanceDraftKey(userID, ticketID)

	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get maintenance draft: %w", err)
	}

	var draft MaintenanceDraft
	if err := json.Unmarshal(val, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal maintenance draft: %w", err)
	}

	return &draft, nil
}

// ClearMaintenanceDraft removes the draft, typically after a successful
// completion submission.
func (s *DraftStore) ClearMaintenanceDraft(ctx context.Context, userID, ticketID uint) error {
	return s.client.Del(ctx, maintenanceDraftKey(userID, ticketID)).Err()
}

// SaveReportDraft upserts the reporter's draft and resets its expiry.
func (s *DraftStore) SaveReportDraft(ctx context.Context, userID uint, draft *ReportDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal report draft: %w", err)
	}

	key := reportDraftKey(userID)
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store report draft: %w", err)
	}

	return nil
}

// GetReportDraft returns the draft or nil when absent or expired.
func (s *DraftStore) GetReportDraft(ctx context.Context, userID uint) (*ReportDraft, error) {
	val, err := s.client.Get(ctx, reportDraftKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report draft: %w", err)
	}

	var draft ReportDraft
	if err := json.Unmarshal(val, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report draft: %w", err)
	}

	return &draft, nil
}

// ClearReportDraft removes the draft after the report is submitted.
func (s *DraftStore) ClearReportDraft(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, reportDraftKey(userID)).Err()
}

func maintenanceDraftKey(userID, ticketID uint) string {
	return fmt.Sprintf("%s%d:%d", maintenanceDraftPrefix, userID, ticketID)
}

func reportDraftKey(userID uint) string {
	return fmt.Sprintf("%s%d", reportDraftPrefix, userID)
}
