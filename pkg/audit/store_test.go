package audit

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStoreWithDB(db)

	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(CascadeEvent{
		SubjectID: "gm",
		FolderID:  "campaign",
		Outcome:   "applied",
		Documents: 2,
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStoreWithDB(db)

	mock.ExpectExec("INSERT INTO messages").
		WillReturnError(assert.AnError)

	err = store.Save(TraversalFallbackEvent{FolderID: "campaign"})
	assert.Error(t, err)
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{}
	assert.NoError(t, store.Save(CascadeEvent{}))
	assert.NoError(t, store.Close())
}
