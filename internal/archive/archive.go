package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/songbird-data/fixturectl/internal/errors"
	"github.com/songbird-data/fixturectl/internal/logging"
)

// Pack writes a gzip-compressed tar archive of roots to dest, overwriting
// dest if it exists. Roots are paths relative to baseDir; entry names are
// recorded relative to baseDir so that Unpack with the same baseDir
// reconstructs the original tree.
//
// Every root must exist before any byte is written; a missing root fails
// with errors.MissingInput and leaves no archive behind.
func Pack(dest, baseDir string, roots []string) error {
	for _, root := range roots {
		info, err := os.Stat(filepath.Join(baseDir, root))
		if err != nil {
			return errors.MissingInput(root)
		}
		if !info.IsDir() {
			return errors.MissingInput(root)
		}
	}

	f, err := os.Create(dest)
	if err != nil {
		return errors.FilesystemError("create", dest, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	for _, root := range roots {
		logging.Debug("packing directory", "root", root)
		if err := packTree(tw, baseDir, root); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive %s: %w", dest, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return errors.FilesystemError("write", dest, err)
	}

	return nil
}

// packTree appends every directory and regular file under root to tw.
func packTree(tw *tar.Writer, baseDir, root string) error {
	start := filepath.Join(baseDir, root)

	return filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			hdr, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return err
			}
			hdr.Name = filepath.ToSlash(rel) + "/"
			return tw.WriteHeader(hdr)
		case info.Mode().IsRegular():
			hdr, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return err
			}
			hdr.Name = filepath.ToSlash(rel)
			if err := tw.WriteHeader(hdr); err != nil {
				return err
			}

			src, err := os.Open(path)
			if err != nil {
				return err
			}
			defer src.Close()

			if _, err := io.Copy(tw, src); err != nil {
				return fmt.Errorf("failed to pack %s: %w", rel, err)
			}
			return nil
		default:
			logging.Warn("skipping irregular file", "path", rel, "mode", info.Mode().String())
			return nil
		}
	})
}

// Unpack expands the gzip-compressed tar archive at src into baseDir,
// overwriting files at colliding paths. Entry names are joined to baseDir
// with SecureJoin, so hostile names cannot write outside it.
func Unpack(src, baseDir string) error {
	f, err := os.Open(src)
	if err != nil {
		return errors.FilesystemError("open", src, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.ArchiveInvalid(src, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.ArchiveInvalid(src, err)
		}

		target, err := securejoin.SecureJoin(baseDir, hdr.Name)
		if err != nil {
			return errors.ArchiveInvalid(src, fmt.Errorf("entry %q: %w", hdr.Name, err))
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, fs.FileMode(hdr.Mode)|0o700); err != nil {
				return errors.FilesystemError("create", target, err)
			}
		case tar.TypeReg:
			if err := writeEntry(target, fs.FileMode(hdr.Mode), tr); err != nil {
				return err
			}
		default:
			logging.Warn("skipping unsupported entry", "name", hdr.Name, "type", hdr.Typeflag)
		}
	}

	return nil
}

// writeEntry writes one regular-file entry, creating parent directories
// as needed and truncating any existing file at the same path.
func writeEntry(target string, mode fs.FileMode, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.FilesystemError("create", filepath.Dir(target), err)
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.FilesystemError("write", target, err)
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return errors.FilesystemError("write", target, err)
	}

	if err := out.Close(); err != nil {
		return errors.FilesystemError("write", target, err)
	}
	return nil
}
