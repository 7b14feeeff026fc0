package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive is empty")

// romExtensions are preferred when picking a file out of an archive.
var romExtensions = []string{".gb", ".gbc", ".bin"}

// LoadFile loads the given file and performs decompression if necessary,
// based on the file extension. Archives (.zip, .7z) yield the first ROM
// file they contain, or the first file if none look like a ROM.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		return readGzip(data)
	case ".xz":
		return readXZ(data)
	case ".zip":
		return readZip(data)
	case ".7z":
		return read7z(data)
	default:
		// return the data as is
		return data, nil
	}
}

func readGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "opening gzip stream")
	}
	defer r.Close()
	return io.ReadAll(r)
}

func readXZ(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "opening xz stream")
	}
	return io.ReadAll(r)
}

func readZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "opening zip archive")
	}

	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
	}
	i := pickFile(names)
	if i < 0 {
		return nil, ErrEmptyArchive
	}

	rc, err := r.File[i].Open()
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", r.File[i].Name)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func read7z(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "opening 7z archive")
	}

	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
	}
	i := pickFile(names)
	if i < 0 {
		return nil, ErrEmptyArchive
	}

	rc, err := r.File[i].Open()
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", r.File[i].Name)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// pickFile returns the index of the first name with a ROM extension,
// the first non directory name otherwise, or -1.
func pickFile(names []string) int {
	first := -1
	for i, name := range names {
		if strings.HasSuffix(name, "/") {
			continue
		}
		if first < 0 {
			first = i
		}
		ext := strings.ToLower(filepath.Ext(name))
		for _, romExt := range romExtensions {
			if ext == romExt {
				return i
			}
		}
	}
	return first
}
