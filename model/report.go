package model

import "time"

// Report is a user-filed report against a project, version, or user.
type Report struct {
	ID         string         `json:"id"`
	ReportType string         `json:"report_type"`
	ItemID     string         `json:"item_id"`
	ItemType   ReportItemType `json:"item_type"`
	Body       string         `json:"body"`
	Reporter   string         `json:"reporter"`
	Created    time.Time      `json:"created"`
	Closed     bool           `json:"closed"`
	ThreadID   string         `json:"thread_id"`
}
