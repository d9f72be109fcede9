package gobdb

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("gob file does not exist")

/* GobFile is a simple atomic-write single-file-database
 * which stores a Go object encoded with encoding/gob.
 *
 * Usage:
 *  gf := gobdb.NewGobFile[YourTypeHere]("yourDB.gob")
 *  err := gf.Save(YourObj)
 *  obj, err := gf.Load()
 */
type GobFile[T any] struct {
	filename string
}

func NewGobFile[T any](filename string) *GobFile[T] {
	return &GobFile[T]{filename: filename}
}

func (gf *GobFile[T]) Filename() string {
	return gf.filename
}

func (gf *GobFile[T]) Save(obj T) error {
	// Same directory as the target so the rename stays on one filesystem.
	tempFile, err := os.CreateTemp(filepath.Dir(gf.filename), ".temp_gob_file")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	encoder := gob.NewEncoder(tempFile)
	if err := encoder.Encode(obj); err != nil {
		tempFile.Close()
		return fmt.Errorf("cannot encode object: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file: %w", err)
	}

	if err := os.Rename(tempFile.Name(), gf.filename); err != nil {
		return fmt.Errorf("cannot rename temporary file to %q: %w", gf.filename, err)
	}

	return nil
}

func (gf *GobFile[T]) Load() (T, error) {
	file, err := os.Open(gf.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return *new(T), fmt.Errorf("%w: %q", ErrNotFound, gf.filename)
		}
		return *new(T), fmt.Errorf("cannot open file %q: %w", gf.filename, err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	var obj T
	if err := decoder.Decode(&obj); err != nil {
		if err == io.EOF {
			return *new(T), fmt.Errorf("file %q is empty", gf.filename)
		}
		return *new(T), fmt.Errorf("cannot decode object from file %q: %w", gf.filename, err)
	}

	return obj, nil
}
