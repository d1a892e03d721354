// Package domain holds DTOs for stats http and service contracts
package domain

import "toolwatch/internal/core/stats"

// Durations are reported in minutes

// SummaryInput selects the duration sample for one open type
type SummaryInput struct {
	OpenType string `json:"open_type" validate:"required,oneof=auto manual" example:"manual"`
}

// SummaryResp is the descriptive profile of one duration sample
type SummaryResp struct {
	OpenType string        `json:"open_type" example:"manual"`
	Minutes  stats.Summary `json:"minutes"`
}

// CompareResp contrasts manual against auto episode durations. The test
// statistics read from the manual side, so a "higher" effect means manually
// opened windows stay open longer
type CompareResp struct {
	Manual      SummaryResp `json:"manual"`
	Auto        SummaryResp `json:"auto"`
	UStatistic  float64     `json:"u_statistic" example:"1234.5"`
	PValue      float64     `json:"p_value" example:"0.0021"`
	CliffsDelta float64     `json:"cliffs_delta" example:"0.21"`
	Effect      string      `json:"effect" example:"small (higher)"`
}

// TypeCountRow is one row of the per-type episode census
type TypeCountRow struct {
	OpenType string `json:"open_type" example:"auto"`
	Episodes int64  `json:"episodes" example:"42"`
}

// CountsResp is the episode census
type CountsResp struct {
	Types []TypeCountRow `json:"types"`
}
