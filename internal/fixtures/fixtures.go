// Package fixtures holds filesystem operations over the generated fixture
// tree: recursive cleanup and status reporting for the info command.
package fixtures

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/songbird-data/fixturectl/internal/errors"
	"github.com/songbird-data/fixturectl/internal/logging"
)

// Clean recursively deletes the generated-data tree. Invoking it on an
// already-absent tree is success; deletion is unconditional.
func Clean(generatedRoot string) error {
	logging.Debug("removing generated tree", "root", generatedRoot)

	if err := os.RemoveAll(generatedRoot); err != nil {
		return errors.FilesystemError("remove", generatedRoot, err)
	}
	return nil
}

// RemoveArchive deletes the archive artifact. Missing file is success.
func RemoveArchive(archivePath string) error {
	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		return errors.FilesystemError("remove", archivePath, err)
	}
	return nil
}

// PathStatus describes one configured path on disk.
type PathStatus struct {
	Path   string
	Exists bool
	IsDir  bool
	Files  int   // regular files under the path (0 for files)
	Bytes  int64 // total size of regular files, or the file's own size
}

// Status reports the on-disk state of a configured path. Walk errors under
// the path are ignored; status reporting must not fail the info command.
func Status(path string) PathStatus {
	st := PathStatus{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return st
	}

	st.Exists = true
	st.IsDir = info.IsDir()
	if !st.IsDir {
		st.Bytes = info.Size()
		return st
	}

	filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil || !fi.Mode().IsRegular() {
			return nil
		}
		st.Files++
		st.Bytes += fi.Size()
		return nil
	})

	return st
}
