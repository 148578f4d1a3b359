package model

// Folder is a tree node grouping documents of one kind. ParentID is nil for
// top-level folders. All documents in a folder subtree share the folder's
// kind; kinds are never mixed within one subtree.
type Folder struct {
	FolderID string  `gorm:"column:folder_id;primaryKey"`
	Name     string  `gorm:"column:name;not null"`
	ParentID *string `gorm:"column:parent_id"`
	Kind     string  `gorm:"column:kind;not null"`
}

func (Folder) TableName() string {
	return "folders"
}
