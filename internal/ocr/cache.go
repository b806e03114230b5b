package ocr

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"go.etcd.io/bbolt"
)

const textBucket = "ocr_text"

// Cache wraps a TextReader with a bbolt-backed cache of raw OCR text, keyed
// by document content digest and source type. Re-running a batch over the
// same images skips the expensive OCR calls; only OCR output is stored, never
// extracted records.
type Cache struct {
	db     *bbolt.DB
	reader TextReader
}

// NewCache opens (or creates) the cache database at path and wraps reader.
func NewCache(path string, reader TextReader) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(textBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache bucket: %w", err)
	}

	return &Cache{db: db, reader: reader}, nil
}

// ExtractText returns cached text for the document when available, otherwise
// delegates to the wrapped reader and stores its result. Empty text is cached
// too: a document the backend cannot read stays unreadable on retry.
func (c *Cache) ExtractText(path string, source SourceType) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	sum := sha256.Sum256(data)
	key := []byte(hex.EncodeToString(sum[:]) + ":" + string(source))

	var cached []byte
	var found bool
	err = c.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(textBucket)).Get(key); v != nil {
			cached = append([]byte(nil), v...)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("reading cache: %w", err)
	}
	if found {
		return string(cached), nil
	}

	text, err := c.reader.ExtractText(path, source)
	if err != nil {
		return "", err
	}

	err = c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(textBucket)).Put(key, []byte(text))
	})
	if err != nil {
		return "", fmt.Errorf("writing cache: %w", err)
	}

	return text, nil
}

// Close closes the wrapped reader and the cache database
func (c *Cache) Close() error {
	return errors.Join(c.reader.Close(), c.db.Close())
}
