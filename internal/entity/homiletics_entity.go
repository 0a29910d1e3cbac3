package entity

import "time"

// HomileticsOutline is the singleton sermon outline built during the
// homiletics stage. Divisions and applications are free-form blocks owned by
// the frontend editor.
type HomileticsOutline struct {
	Id           string
	CentralIdea  string
	Divisions    []map[string]interface{}
	Applications []map[string]interface{}
	UpdatedAt    time.Time
}
