package installer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raphi011/git-smee/internal/platform"
)

// Only the head of a file is scanned for the marker.
const (
	markerScanBytes = 1024
	markerScanLines = 8
)

// IsManaged reports whether the file at path carries the managed marker
// within its first lines.
func IsManaged(path string) (bool, error) {
	// #nosec G304 -- path is a hook or config file chosen by the caller
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadExistingFailed, err)
	}
	defer f.Close()

	head := make([]byte, markerScanBytes)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("%w: read %s: %w", ErrReadExistingFailed, path, err)
	}
	return HasManagedMarker(head[:n]), nil
}

// HasManagedMarker reports whether one of the first lines of data is exactly
// a marker comment line. Line endings are normalized first.
func HasManagedMarker(data []byte) bool {
	if len(data) > markerScanBytes {
		data = data[:markerScanBytes]
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	scanner := bufio.NewScanner(strings.NewReader(text))
	for lines := 0; lines < markerScanLines && scanner.Scan(); lines++ {
		switch scanner.Text() {
		case platform.HashMarkerLine, platform.RemMarkerLine:
			return true
		}
	}
	return false
}

// WithManagedHeader adds markerLine to content. A leading shebang line stays
// first so the script remains executable; otherwise the marker and a blank
// line are prepended.
func WithManagedHeader(content, markerLine string) string {
	if !strings.HasPrefix(content, "#!") {
		return markerLine + "\n\n" + content
	}
	return afterFirstLine(content, markerLine)
}

// afterFirstLine inserts line right after the first line of content.
func afterFirstLine(content, line string) string {
	end := strings.IndexByte(content, '\n')
	if end < 0 {
		return content + "\n" + line + "\n"
	}
	return content[:end+1] + line + "\n" + content[end+1:]
}
