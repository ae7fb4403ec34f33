package feed

import (
	"io/ioutil"
	"os"
	"time"
)

// FileSystem is the interface to handle snapshot and artifact file read/write.
type FileSystem interface {
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, buf []byte) error
	ModTime(filename string) (time.Time, error)
}

// FileSystemImpl is the implementation of FileSystem on the OS file system.
type FileSystemImpl struct {
}

// ReadFile reads the full content of the given file.
func (fs *FileSystemImpl) ReadFile(filename string) ([]byte, error) {
	return ioutil.ReadFile(filename)
}

// WriteFile replaces the content of the given file.
func (fs *FileSystemImpl) WriteFile(filename string, buf []byte) error {
	return ioutil.WriteFile(filename, buf, 0644)
}

// ModTime returns the modification time of the given file.
func (fs *FileSystemImpl) ModTime(filename string) (time.Time, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}
