package model

// Document is a leaf record held by a folder (an actor, item, journal
// entry, scene, ...). Its ownership state lives in document_ownership rows.
type Document struct {
	DocumentID string `gorm:"column:document_id;primaryKey"`
	FolderID   string `gorm:"column:folder_id;not null"`
	Kind       string `gorm:"column:kind;not null"`
	Name       string `gorm:"column:name;not null"`
}

func (Document) TableName() string {
	return "documents"
}
