package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_duplicate_services.go -package mocks github.com/Contactory/contactory/internal/domain DuplicateDetectionService,ContactImportService,DuplicateResolutionService

// DuplicateType classifies which fields of a candidate collide with an
// existing contact
type DuplicateType string

const (
	DuplicateTypeEmail DuplicateType = "email"
	DuplicateTypePhone DuplicateType = "phone"
	DuplicateTypeBoth  DuplicateType = "both"
)

// DuplicateMatch is a detected collision between a candidate contact and
// an existing one. It is ephemeral: created by detection, consumed by
// resolution, never persisted.
type DuplicateMatch struct {
	Candidate      *CandidateContact `json:"candidate"`
	Existing       *Contact          `json:"existing"`
	DuplicateType  DuplicateType     `json:"duplicate_type"`
	ConflictFields []string          `json:"conflict_fields"`
}

// ResolutionAction is the closed set of ways to handle a duplicate.
// Anything else is rejected with InvalidResolutionError before any
// repository mutation.
type ResolutionAction string

const (
	ResolutionActionUpdate      ResolutionAction = "update"
	ResolutionActionSkip        ResolutionAction = "skip"
	ResolutionActionForceCreate ResolutionAction = "force_create"
)

// Validate checks if the action is one of the recognized values
func (a ResolutionAction) Validate() error {
	switch a {
	case ResolutionActionUpdate, ResolutionActionSkip, ResolutionActionForceCreate:
		return nil
	}
	return &InvalidResolutionError{Message: fmt.Sprintf("unrecognized action: %s", a)}
}

// ResolutionResult reports the outcome of resolving a single duplicate
type ResolutionResult struct {
	Action  ResolutionAction `json:"action"`
	Contact *Contact         `json:"contact,omitempty"`
	Created bool             `json:"created"`
}

// ImportOutcome is the aggregated result of a bulk run: what was written,
// what awaits a resolution decision, and which rows failed. Built
// incrementally, returned once per batch, not persisted.
type ImportOutcome struct {
	Created    int               `json:"created"`
	Updated    int               `json:"updated"`
	Skipped    int               `json:"skipped"`
	Duplicates []*DuplicateMatch `json:"duplicates"`
	Errors     []string          `json:"errors"`
}

// NewImportOutcome returns an outcome with non-nil slices so callers
// always get a structured result, even for an empty batch
func NewImportOutcome() *ImportOutcome {
	return &ImportOutcome{
		Duplicates: []*DuplicateMatch{},
		Errors:     []string{},
	}
}

// DetectDuplicatesRequest carries a single candidate for the interactive
// detection path
type DetectDuplicatesRequest struct {
	Contact json.RawMessage `json:"contact" valid:"required"`
}

func (r *DetectDuplicatesRequest) Validate() (*CandidateContact, error) {
	jsonResult := gjson.ParseBytes(r.Contact)
	if !jsonResult.Exists() {
		return nil, fmt.Errorf("contact field is required")
	}
	candidate, err := CandidateFromJSON(jsonResult)
	if err != nil {
		return nil, fmt.Errorf("invalid contact: %w", err)
	}
	return candidate, nil
}

// ImportContactsRequest carries an ordered batch of candidates plus the
// segments every created contact should be attached to
type ImportContactsRequest struct {
	Contacts   json.RawMessage `json:"contacts" valid:"required"`
	SegmentIDs []string        `json:"segment_ids,omitempty"`
}

func (r *ImportContactsRequest) Validate() (candidates []*CandidateContact, segmentIDs []string, err error) {
	jsonResult := gjson.ParseBytes(r.Contacts)
	if !jsonResult.IsArray() {
		return nil, nil, fmt.Errorf("contacts must be an array")
	}

	contactsArray := jsonResult.Array()
	if len(contactsArray) == 0 {
		return nil, nil, fmt.Errorf("contacts array is empty")
	}

	candidates = make([]*CandidateContact, 0, len(contactsArray))
	for i, contactJSON := range contactsArray {
		candidate, err := CandidateFromJSON(contactJSON)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid contact at index %d: %w", i, err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, r.SegmentIDs, nil
}

// ResolveDuplicateRequest applies one action to one detected duplicate
type ResolveDuplicateRequest struct {
	Match           *DuplicateMatch  `json:"match" valid:"required"`
	Action          ResolutionAction `json:"action" valid:"required"`
	TargetContactID string           `json:"target_contact_id,omitempty"`
	SegmentIDs      []string         `json:"segment_ids,omitempty"`
}

func (r *ResolveDuplicateRequest) Validate() error {
	if r.Match == nil {
		return fmt.Errorf("match is required")
	}
	if r.Match.Candidate == nil {
		return fmt.Errorf("match candidate is required")
	}
	if err := r.Action.Validate(); err != nil {
		return err
	}
	return nil
}

// ResolveBatchRequest applies per-index actions to a list of duplicates
type ResolveBatchRequest struct {
	Matches    []*DuplicateMatch        `json:"matches" valid:"required"`
	Actions    map[int]ResolutionAction `json:"actions" valid:"required"`
	SegmentIDs []string                 `json:"segment_ids,omitempty"`
}

func (r *ResolveBatchRequest) Validate() error {
	if len(r.Matches) == 0 {
		return fmt.Errorf("matches is required")
	}
	if len(r.Actions) == 0 {
		return fmt.Errorf("actions is required")
	}
	return nil
}

// DuplicateDetectionService classifies a candidate contact against the
// current repository state
type DuplicateDetectionService interface {
	// DetectDuplicates returns every existing contact colliding with the
	// candidate on phone and/or email. An empty list means no duplicate.
	DetectDuplicates(ctx context.Context, candidate *CandidateContact) ([]*DuplicateMatch, error)
}

// ContactImportService drives a batch of candidates through detection,
// partitioning them into created, duplicate and errored
type ContactImportService interface {
	// ImportBatch processes candidates sequentially in input order. Row
	// level failures are recorded in the outcome; only a call-level
	// failure returns a non-nil error.
	ImportBatch(ctx context.Context, candidates []*CandidateContact, segmentIDs []string) (*ImportOutcome, error)
}

// DuplicateResolutionService turns resolution decisions into repository
// mutations
type DuplicateResolutionService interface {
	// ResolveOne applies the action to a single duplicate match.
	// targetContactID selects the update target when the caller resolved
	// against several matches; empty means the match's own contact.
	ResolveOne(ctx context.Context, match *DuplicateMatch, action ResolutionAction, targetContactID string, segmentIDs []string) (*ResolutionResult, error)

	// ResolveBatch applies per-index actions, accumulating counts and row
	// errors. A failure on one match never stops the rest.
	ResolveBatch(ctx context.Context, matches []*DuplicateMatch, actions map[int]ResolutionAction, segmentIDs []string) (*ImportOutcome, error)
}
