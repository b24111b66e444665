package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"cparse/internal/domain"
)

var (
	bucketFiles     = []byte("files")
	bucketFunctions = []byte("functions")
	bucketNames     = []byte("names")
	bucketMeta      = []byte("meta")
)

// BoltStore persists per-file function catalogs in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketFiles, bucketFunctions, bucketNames, bucketMeta}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type fileMeta struct {
	Path    string `json:"path"`
	ModTime int64  `json:"mod_time"`
}

func (s *BoltStore) PutFile(entry domain.FileEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := fileMeta{
			Path:    entry.Path,
			ModTime: entry.ModTime.Unix(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Put([]byte(entry.ID), data)
	})
}

func (s *BoltStore) GetFile(id string) (domain.FileEntry, error) {
	var entry domain.FileEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("file not found: %s", id)
		}
		var meta fileMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		entry = domain.FileEntry{
			ID:      id,
			Path:    meta.Path,
			ModTime: time.Unix(meta.ModTime, 0),
		}
		return nil
	})
	return entry, err
}

func (s *BoltStore) ListFiles() ([]domain.FileEntry, error) {
	var entries []domain.FileEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketFiles)
		return b.ForEach(func(k, v []byte) error {
			var meta fileMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			entries = append(entries, domain.FileEntry{
				ID:      string(k),
				Path:    meta.Path,
				ModTime: time.Unix(meta.ModTime, 0),
			})
			return nil
		})
	})
	return entries, err
}

// DeleteFile removes the file entry, its functions and its name postings.
func (s *BoltStore) DeleteFile(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		var functions []domain.Function
		if data := tx.Bucket(bucketFunctions).Get([]byte(id)); data != nil {
			if err := json.Unmarshal(data, &functions); err != nil {
				return err
			}
		}
		for _, fn := range functions {
			if err := removePosting(tx, fn.Name, id); err != nil {
				return err
			}
		}
		if err := tx.Bucket(bucketFunctions).Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Delete([]byte(id))
	})
}

// PutFunctions replaces the function catalog for a file and refreshes the
// name postings.
func (s *BoltStore) PutFunctions(fileID string, functions []domain.Function) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		fnBucket := tx.Bucket(bucketFunctions)

		var old []domain.Function
		if data := fnBucket.Get([]byte(fileID)); data != nil {
			if err := json.Unmarshal(data, &old); err != nil {
				return err
			}
		}
		for _, fn := range old {
			if err := removePosting(tx, fn.Name, fileID); err != nil {
				return err
			}
		}

		data, err := json.Marshal(functions)
		if err != nil {
			return err
		}
		if err := fnBucket.Put([]byte(fileID), data); err != nil {
			return err
		}

		for _, fn := range functions {
			if err := addPosting(tx, fn.Name, fileID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) GetFunctions(fileID string) ([]domain.Function, error) {
	var functions []domain.Function
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFunctions).Get([]byte(fileID))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &functions)
	})
	return functions, err
}

// FilesForName returns the IDs of files whose catalog contains a function
// with the given name.
func (s *BoltStore) FilesForName(name string) ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketNames).Get([]byte(name))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &ids)
	})
	return ids, err
}

// Clear drops and recreates all buckets.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketFiles, bucketFunctions, bucketNames, bucketMeta}
		for _, b := range buckets {
			if err := tx.DeleteBucket(b); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func addPosting(tx *bbolt.Tx, name, fileID string) error {
	b := tx.Bucket(bucketNames)
	var ids []string
	if data := b.Get([]byte(name)); data != nil {
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}
	}
	for _, id := range ids {
		if id == fileID {
			return nil
		}
	}
	ids = append(ids, fileID)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return b.Put([]byte(name), data)
}

func removePosting(tx *bbolt.Tx, name, fileID string) error {
	b := tx.Bucket(bucketNames)
	data := b.Get([]byte(name))
	if data == nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != fileID {
			kept = append(kept, id)
		}
	}
	if len(kept) == 0 {
		return b.Delete([]byte(name))
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return b.Put([]byte(name), out)
}
