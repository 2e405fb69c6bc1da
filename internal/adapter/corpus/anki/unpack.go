package anki

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Unpack extracts an .apkg archive into dest. Entries compressed with zstd
// (media files of newer packages) are written decompressed, except the
// anki21b collection, which Load decompresses itself. It returns the number of
// files written.
func Unpack(apkg, dest string) (int, error) {
	r, err := zip.OpenReader(apkg)
	if err != nil {
		return 0, fmt.Errorf("open package: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dest, err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return 0, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	written := 0
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return written, err
		}
		if err := extract(f, target, dec); err != nil {
			return written, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		written++
	}
	return written, nil
}

func extract(f *zip.File, target string, dec *zstd.Decoder) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	if isZstd(data) && filepath.Base(f.Name) != fileAnki21b {
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

// safeJoin rejects entry names that would escape dest.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("package entry %q escapes destination", name)
	}
	return target, nil
}
