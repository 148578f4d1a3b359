package cascade

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-vtt/inkwell/pkg/ownership"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	return db, mock
}

func TestGormTreeDescendants(t *testing.T) {
	db, mock := newMockDB(t)
	tree := NewGormTree(db)

	rows := sqlmock.NewRows([]string{"folder_id", "name", "parent_id", "kind"}).
		AddRow("sub", "Sub", "root", "journal").
		AddRow("subsub", "Sub Sub", "sub", "journal")
	mock.ExpectQuery("WITH RECURSIVE subtree").
		WithArgs("root").
		WillReturnRows(rows)

	folders, err := tree.Descendants("root")

	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "sub", folders[0].FolderID)
	assert.Equal(t, "subsub", folders[1].FolderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTreeDescendantsUnsupported(t *testing.T) {
	db, mock := newMockDB(t)
	tree := NewGormTree(db)

	mock.ExpectQuery("WITH RECURSIVE subtree").
		WithArgs("root").
		WillReturnError(errors.New(`syntax error at or near "RECURSIVE"`))

	_, err := tree.Descendants("root")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enumerate descendants")
}

func TestGormTreeChildren(t *testing.T) {
	db, mock := newMockDB(t)
	tree := NewGormTree(db)

	rows := sqlmock.NewRows([]string{"folder_id", "name", "parent_id", "kind"}).
		AddRow("sub", "Sub", "root", "journal")
	mock.ExpectQuery(`SELECT \* FROM "folders" WHERE parent_id = \$1`).
		WithArgs("root").
		WillReturnRows(rows)

	folders, err := tree.Children("root")

	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "sub", folders[0].FolderID)
}

func TestGormTreeDocuments(t *testing.T) {
	db, mock := newMockDB(t)
	tree := NewGormTree(db)

	rows := sqlmock.NewRows([]string{"document_id"}).
		AddRow("doc1").
		AddRow("doc2")
	mock.ExpectQuery(`SELECT "document_id" FROM "documents"`).
		WithArgs("root").
		WillReturnRows(rows)

	ids, err := tree.Documents("root")

	require.NoError(t, err)
	assert.Equal(t, []string{"doc1", "doc2"}, ids)
}

func TestGormTreeFolder(t *testing.T) {
	db, mock := newMockDB(t)
	tree := NewGormTree(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"folder_id", "name", "parent_id", "kind"}).
			AddRow("root", "Root", nil, "journal")
		mock.ExpectQuery(`SELECT \* FROM "folders" WHERE folder_id = \$1 AND kind = \$2`).
			WithArgs("root", "journal").
			WillReturnRows(rows)

		folder, err := tree.Folder("journal", "root")

		require.NoError(t, err)
		assert.Equal(t, "root", folder.FolderID)
		assert.Nil(t, folder.ParentID)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "folders" WHERE folder_id = \$1 AND kind = \$2`).
			WithArgs("ghost", "journal").
			WillReturnRows(sqlmock.NewRows([]string{"folder_id", "name", "parent_id", "kind"}))

		_, err := tree.Folder("journal", "ghost")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestGormTreeFoldersByKind(t *testing.T) {
	db, mock := newMockDB(t)
	tree := NewGormTree(db)

	rows := sqlmock.NewRows([]string{"folder_id", "name", "parent_id", "kind"}).
		AddRow("campaign", "Campaign", nil, "journal").
		AddRow("handouts", "Handouts", "campaign", "journal")
	mock.ExpectQuery(`SELECT \* FROM "folders" WHERE kind = \$1`).
		WithArgs("journal").
		WillReturnRows(rows)

	folders, err := tree.FoldersByKind("journal", 10)

	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "campaign", folders[0].FolderID)
}

func TestGormStoreApplyOwnership(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewGormStore(db)

	ops := []Operation{
		{DocumentID: "doc1", Assignment: ownership.Assignment{"default": ownership.LevelObserver}},
		{DocumentID: "doc2", Assignment: ownership.Assignment{"default": ownership.LevelObserver}},
	}

	mock.ExpectBegin()
	for _, op := range ops {
		mock.ExpectExec(`DELETE FROM "document_ownership"`).
			WithArgs(op.DocumentID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "document_ownership"`).
			WithArgs(op.DocumentID, "default", int(ownership.LevelObserver)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := store.ApplyOwnership("journal", ops)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreApplyOwnershipRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewGormStore(db)

	ops := []Operation{
		{DocumentID: "doc1", Assignment: ownership.Assignment{"default": ownership.LevelOwner}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "document_ownership"`).
		WithArgs("doc1").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := store.ApplyOwnership("journal", ops)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear ownership of doc1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
