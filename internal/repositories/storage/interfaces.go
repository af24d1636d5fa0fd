package storage

import "io"

type FileRepository interface {
	SaveFile(name string, reader io.Reader) (string, error)
	LoadFile(path string) (io.ReadCloser, error)
	DeleteFile(path string) error
}
