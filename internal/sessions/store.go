package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

type Store struct {
	db *badger.DB
}

func NewStore(db *badger.DB) *Store {
	return &Store{
		db: db,
	}
}

var ErrNotFound = errors.New("not found")

func (s *Store) FindByID(_ context.Context, id ID) (*Session, error) {
	var session Session
	if err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(idKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &session)
		})
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Insert creates or replaces the session.
func (s *Store) Insert(_ context.Context, session *Session) error {
	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(session)
		if err != nil {
			return err
		}
		entry := badger.NewEntry(idKey(session.ID), data).WithTTL(30 * day)
		if err := txn.SetEntry(entry); err != nil {
			return err
		}
		return nil
	})
}

func (s *Store) Delete(_ context.Context, id ID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(idKey(id))
	})
}

func idKey(id ID) []byte {
	return []byte(fmt.Sprintf("sessions/%s", id))
}
