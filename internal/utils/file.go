package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// GetFileExtension returns the file extension without the dot, lowercased
func GetFileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// IsJPEGFile checks if a file has a jpg or jpeg extension
func IsJPEGFile(filename string) bool {
	switch GetFileExtension(filename) {
	case "jpg", "jpeg":
		return true
	default:
		return false
	}
}

// OutputPath places the base name of inputFile directly in outputDir.
// Directory structure below the input root is not kept.
func OutputPath(inputFile, outputDir string) string {
	return filepath.Join(outputDir, filepath.Base(inputFile))
}

// ListJPEGFiles recursively lists regular JPEG files under dir in lexical
// order. Entries that cannot be read are skipped, as are symlinks and other
// non-regular files.
func ListJPEGFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && IsJPEGFile(path) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// FileExists checks if a regular file exists, following symlinks
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists reports whether anything exists at path, following symlinks
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
