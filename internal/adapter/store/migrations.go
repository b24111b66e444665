package store

import (
	"encoding/json"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the catalog storage format version. Increment on
// breaking changes to the stored records.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// EnsureSchema checks the stored schema version and clears the catalog when
// it does not match, forcing a rebuild on the next index run. Returns true
// when the store was cleared.
func (s *BoltStore) EnsureSchema() (bool, error) {
	var stored int
	err := s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketMeta).Get(keySchemaVersion); data != nil {
			return json.Unmarshal(data, &stored)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	cleared := false
	if stored != 0 && stored != CurrentSchemaVersion {
		if err := s.Clear(); err != nil {
			return false, err
		}
		cleared = true
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(CurrentSchemaVersion)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
	return cleared, err
}
