package model

// OwnershipEntry grants one subject an ownership level on one document.
// The level column stores the numeric Level encoding (0-3).
type OwnershipEntry struct {
	DocumentID string `gorm:"column:document_id;primaryKey"`
	SubjectID  string `gorm:"column:subject_id;primaryKey"`
	Level      int    `gorm:"column:level;not null"`
}

func (OwnershipEntry) TableName() string {
	return "document_ownership"
}
