package main

import (
	"errors"
	"os"
	"testing"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
)

func _createTmpDb() (*bbolt.DB, func()) {
	f, err := os.CreateTemp("", "db_*.db")
	if err != nil {
		panic(err)
	}

	db, err := bbolt.Open(f.Name(), 0600, nil)
	if err != nil {
		panic(err)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(f.Name())
	}
}

func TestBoltDocumentStore(t *testing.T) {
	t.Run("find absent document", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		store := NewBoltDocumentStore(db)

		document, err := store.Find(contracts.ColumnDocuments, "sheet-1")

		assert.NoError(t, err)
		assert.Nil(t, document)
	})

	t.Run("update then find", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		store := NewBoltDocumentStore(db)

		stored, err := store.Update(contracts.ColumnDocuments, "sheet-1", func(current []byte) ([]byte, error) {
			assert.Nil(t, current)
			return []byte(`{"columns":[]}`), nil
		})

		assert.NoError(t, err)
		assert.Equal(t, []byte(`{"columns":[]}`), stored)

		document, err := store.Find(contracts.ColumnDocuments, "sheet-1")

		assert.NoError(t, err)
		assert.Equal(t, []byte(`{"columns":[]}`), document)
	})

	t.Run("mutate sees the current document", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		store := NewBoltDocumentStore(db)

		_, err := store.Update(contracts.RowDocuments, "sheet-1", func(current []byte) ([]byte, error) {
			return []byte(`v1`), nil
		})
		assert.NoError(t, err)

		_, err = store.Update(contracts.RowDocuments, "sheet-1", func(current []byte) ([]byte, error) {
			assert.Equal(t, []byte(`v1`), current)
			return []byte(`v2`), nil
		})
		assert.NoError(t, err)
	})

	t.Run("mutate error writes nothing", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		store := NewBoltDocumentStore(db)

		expectedErr := errors.New("rejected")

		_, err := store.Update(contracts.RowDocuments, "sheet-1", func(current []byte) ([]byte, error) {
			return nil, expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)

		document, err := store.Find(contracts.RowDocuments, "sheet-1")

		assert.NoError(t, err)
		assert.Nil(t, document)
	})

	t.Run("kinds are isolated", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		defer dbClose()

		store := NewBoltDocumentStore(db)

		_, err := store.Update(contracts.ColumnDocuments, "sheet-1", func(current []byte) ([]byte, error) {
			return []byte(`columns`), nil
		})
		assert.NoError(t, err)

		document, err := store.Find(contracts.RowDocuments, "sheet-1")

		assert.NoError(t, err)
		assert.Nil(t, document)
	})

	t.Run("closed database reports storage error", func(t *testing.T) {
		db, dbClose := _createTmpDb()
		dbClose()

		store := NewBoltDocumentStore(db)

		_, err := store.Update(contracts.RowDocuments, "sheet-1", func(current []byte) ([]byte, error) {
			return []byte(`doc`), nil
		})

		assert.ErrorIs(t, err, contracts.StorageError)
	})
}
