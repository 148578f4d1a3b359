package cascade

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/inkwell-vtt/inkwell/pkg/model"
)

// Ensure the gorm implementations satisfy the collaborator contracts
var (
	_ Tree  = (*GormTree)(nil)
	_ Store = (*GormStore)(nil)
)

// GormTree implements Tree over the folders and documents tables.
type GormTree struct {
	db *gorm.DB
}

// NewGormTree creates a new GormTree.
func NewGormTree(db *gorm.DB) *GormTree {
	return &GormTree{db: db}
}

// Descendants enumerates the full subtree below a folder with one
// recursive CTE. Backends without recursive CTE support surface an error
// here, which sends the engine down the manual-walk path.
func (t *GormTree) Descendants(folderID string) ([]model.Folder, error) {
	var folders []model.Folder
	err := t.db.Raw(`
		WITH RECURSIVE subtree AS (
			SELECT folder_id, name, parent_id, kind
			FROM folders WHERE parent_id = ?
			UNION ALL
			SELECT f.folder_id, f.name, f.parent_id, f.kind
			FROM folders f
			JOIN subtree s ON f.parent_id = s.folder_id
		)
		SELECT folder_id, name, parent_id, kind FROM subtree
	`, folderID).Scan(&folders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate descendants of %s: %w", folderID, err)
	}
	return folders, nil
}

// Children returns the direct child folders of a folder.
func (t *GormTree) Children(folderID string) ([]model.Folder, error) {
	var folders []model.Folder
	if err := t.db.Where("parent_id = ?", folderID).Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", folderID, err)
	}
	return folders, nil
}

// Documents returns the IDs of the documents directly inside a folder.
func (t *GormTree) Documents(folderID string) ([]string, error) {
	var ids []string
	err := t.db.Model(&model.Document{}).
		Where("folder_id = ?", folderID).
		Order("document_id").
		Pluck("document_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents of %s: %w", folderID, err)
	}
	return ids, nil
}

// Folder fetches a folder by ID and kind. Used by callers to resolve the
// cascade root before invoking the engine.
func (t *GormTree) Folder(kind, folderID string) (*model.Folder, error) {
	var folder model.Folder
	err := t.db.Where("folder_id = ? AND kind = ?", folderID, kind).First(&folder).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// FoldersByKind lists folders of one kind, ordered by ID, up to limit.
func (t *GormTree) FoldersByKind(kind string, limit int) ([]model.Folder, error) {
	var folders []model.Folder
	err := t.db.Where("kind = ?", kind).Order("folder_id").Limit(limit).Find(&folders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list folders of kind %s: %w", kind, err)
	}
	return folders, nil
}

// GormStore implements Store over the document_ownership table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ApplyOwnership replaces each named document's ownership rows with the
// assignment carried by its operation. The whole batch runs in one
// transaction: the engine's single submission either lands or rolls back.
func (s *GormStore) ApplyOwnership(kind string, ops []Operation) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := tx.Where("document_id = ?", op.DocumentID).Delete(&model.OwnershipEntry{}).Error; err != nil {
				return fmt.Errorf("failed to clear ownership of %s: %w", op.DocumentID, err)
			}
			for subject, level := range op.Assignment {
				entry := model.OwnershipEntry{
					DocumentID: op.DocumentID,
					SubjectID:  subject,
					Level:      int(level),
				}
				if err := tx.Create(&entry).Error; err != nil {
					return fmt.Errorf("failed to grant %s on %s: %w", subject, op.DocumentID, err)
				}
			}
		}
		return nil
	})
}
