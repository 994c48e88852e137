package main

import (
	"fmt"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"go.etcd.io/bbolt"
)

// BoltDocumentStore keeps one bucket per document kind, keyed by
// spreadsheet id. Update runs its read-modify-write cycle inside a single
// write transaction, so concurrent mutations of the same document are
// serialized by bbolt's single writer.
type BoltDocumentStore struct {
	db *bbolt.DB
}

func NewBoltDocumentStore(db *bbolt.DB) *BoltDocumentStore {
	return &BoltDocumentStore{db: db}
}

func (s *BoltDocumentStore) Find(kind contracts.DocumentKind, spreadsheetId string) (document []byte, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kind))
		if bucket == nil {
			return nil
		}

		if stored := bucket.Get([]byte(spreadsheetId)); stored != nil {
			document = make([]byte, len(stored))
			copy(document, stored)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.StorageError, err)
	}

	return document, nil
}

func (s *BoltDocumentStore) Update(
	kind contracts.DocumentKind,
	spreadsheetId string,
	mutate func(current []byte) ([]byte, error),
) (document []byte, err error) {
	var mutateErr error

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, bucketErr := tx.CreateBucketIfNotExists([]byte(kind))
		if bucketErr != nil {
			return bucketErr
		}

		document, mutateErr = mutate(bucket.Get([]byte(spreadsheetId)))
		if mutateErr != nil {
			return mutateErr
		}

		return bucket.Put([]byte(spreadsheetId), document)
	})

	if err != nil {
		if err == mutateErr {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", contracts.StorageError, err)
	}

	return document, nil
}
