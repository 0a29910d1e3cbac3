package entity

import "time"

// CurationSource is a feed of academic material tracked by the curation view.
type CurationSource struct {
	Id           string
	Name         string
	Url          string
	Tradition    string
	MaterialType string
	Frequency    string
	Weight       int
	Active       bool
	CreatedAt    time.Time
}

type CurationItem struct {
	Id            string
	Title         string
	Author        *string
	Institution   *string
	Tags          []string
	MaterialLevel string
	Abstract      *string
	PublishedAt   string
	SourceId      *string
	CreatedAt     time.Time
}
