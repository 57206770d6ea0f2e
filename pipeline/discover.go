package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// VideoExtensions lists the container extensions treated as video input.
var VideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v"}

// InputNotFoundError reports an input path that yielded no videos to process.
type InputNotFoundError struct {
	Path    string
	Missing bool
}

func (e *InputNotFoundError) Error() string {
	if e.Missing {
		return fmt.Sprintf("input path not found: %s", e.Path)
	}
	return fmt.Sprintf("no video files found in: %s", e.Path)
}

func isVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range VideoExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// Discover resolves an input path into the list of videos to process.
// A regular file is returned as-is, a directory is scanned non-recursively
// for known video extensions and the matches are returned sorted.
func Discover(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &InputNotFoundError{Path: input, Missing: true}
		}
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isVideoFile(entry.Name()) {
			videos = append(videos, filepath.Join(input, entry.Name()))
		}
	}
	if len(videos) == 0 {
		return nil, &InputNotFoundError{Path: input}
	}

	sort.Strings(videos)
	return videos, nil
}
