package output

import (
	"strings"

	"geofeed/feed"
)

// NewArtifactWriter creates a writer for the output CIDR artifact at path.
func NewArtifactWriter(fs feed.FileSystem, path string) feed.ArtifactWriter {
	return &artifactWriterImpl{fs: fs, path: path}
}

type artifactWriterImpl struct {
	fs   feed.FileSystem
	path string
}

// Replace truncates the artifact and writes the given lines, joined by a
// single newline with no trailing newline.
func (w *artifactWriterImpl) Replace(lines []string) error {
	return w.fs.WriteFile(w.path, []byte(strings.Join(lines, "\n")))
}

// Append adds lines after the existing content. A missing artifact is treated
// as empty. When the existing content is non-empty and does not already end
// in a newline, exactly one is inserted before the appended block. The block
// itself gets no trailing newline. Existing content is never truncated or
// reordered.
func (w *artifactWriterImpl) Append(lines []string) error {
	existing, err := w.fs.ReadFile(w.path)
	if err != nil {
		existing = nil
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += strings.Join(lines, "\n")

	return w.fs.WriteFile(w.path, []byte(content))
}
