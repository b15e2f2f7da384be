package models

import (
	"strings"

	"gorm.io/gorm"
)

// Member is a person in the household. The name, not the ID, is the
// join key used by all transactional entities: historical entries keep
// the name they were recorded with, so removing or re-adding a member
// never relabels old data.
type Member struct {
	DefaultModel
	Name string `json:"name" gorm:"uniqueIndex" example:"Asha"` // Display name, join key for all entries
}

// BeforeSave trims whitespace and rejects empty names.
func (m *Member) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)

	if m.Name == "" {
		return ErrMemberRequired
	}

	return nil
}
