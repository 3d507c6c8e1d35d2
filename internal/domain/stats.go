package domain

import "context"

//go:generate mockgen -destination mocks/mock_stats_service.go -package mocks github.com/Contactory/contactory/internal/domain ContactStatsService

// SegmentCount is a per-segment contact count
type SegmentCount struct {
	SegmentID   string `json:"segment_id"`
	SegmentName string `json:"segment_name"`
	Count       int    `json:"count"`
}

// ContactStats is the read-side summary of the contact database
type ContactStats struct {
	Total     int             `json:"total"`
	ByStatus  map[string]int  `json:"by_status"`
	BySegment []*SegmentCount `json:"by_segment"`
}

// ContactStatsService derives summary counts over contacts and segments
type ContactStatsService interface {
	GetContactStats(ctx context.Context) (*ContactStats, error)
}
