// Package styles manages the CSS themes used to render resumes and cover
// letters. A style is a CSS file whose first line carries its metadata:
//
//	/* Style Name $ https://link-to-author */
//
// Files without that header line are ignored. Styles ship embedded in the
// binary; a user-supplied directory overrides them.
package styles

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed defaults/*.css
var defaultStyles embed.FS

// ErrNoStyles is returned when the styles source contains no usable styles.
var ErrNoStyles = errors.New("no styles available")

// Style describes one available CSS theme.
type Style struct {
	Name       string
	FileName   string
	AuthorLink string
}

// Manager lists and loads styles from a directory or the embedded defaults.
type Manager struct {
	fsys fs.FS
	dir  string
}

// NewManager returns a manager over the given styles directory. With an
// empty dir the embedded default styles are used.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		sub, err := fs.Sub(defaultStyles, "defaults")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded styles: %w", err)
		}
		return &Manager{fsys: sub}, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("styles directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("styles path %s is not a directory", dir)
	}

	return &Manager{fsys: os.DirFS(dir), dir: dir}, nil
}

// List returns the available styles sorted by name.
func (m *Manager) List() ([]Style, error) {
	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read styles directory: %w", err)
	}

	var styles []Style
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".css") {
			continue
		}

		style, ok, err := m.readMetadata(entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			styles = append(styles, style)
		}
	}

	sort.Slice(styles, func(i, j int) bool { return styles[i].Name < styles[j].Name })
	return styles, nil
}

// FormatChoices renders the styles for user presentation.
func FormatChoices(styles []Style) []string {
	choices := make([]string, 0, len(styles))
	for _, s := range styles {
		choices = append(choices, fmt.Sprintf("%s (style author -> %s)", s.Name, s.AuthorLink))
	}
	return choices
}

// Resolve returns the style with the given name, or the first available
// style when name is empty.
func (m *Manager) Resolve(name string) (Style, error) {
	styles, err := m.List()
	if err != nil {
		return Style{}, err
	}
	if len(styles) == 0 {
		return Style{}, ErrNoStyles
	}

	if name == "" {
		return styles[0], nil
	}

	for _, s := range styles {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Style{}, fmt.Errorf("style %q not found", name)
}

// CSS loads the full stylesheet for the given style name.
func (m *Manager) CSS(name string) (string, error) {
	style, err := m.Resolve(name)
	if err != nil {
		return "", err
	}

	data, err := fs.ReadFile(m.fsys, style.FileName)
	if err != nil {
		return "", fmt.Errorf("failed to read style %s: %w", style.Name, err)
	}
	return string(data), nil
}

// readMetadata parses the first-line metadata comment of a style file.
// Returns ok=false when the file has no valid metadata line.
func (m *Manager) readMetadata(fileName string) (Style, bool, error) {
	f, err := m.fsys.Open(fileName)
	if err != nil {
		return Style{}, false, fmt.Errorf("failed to open style file %s: %w", fileName, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return Style{}, false, nil
	}

	firstLine := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(firstLine, "/*") || !strings.HasSuffix(firstLine, "*/") {
		return Style{}, false, nil
	}

	content := strings.TrimSpace(firstLine[2 : len(firstLine)-2])
	name, link, found := strings.Cut(content, "$")
	if !found {
		return Style{}, false, nil
	}

	return Style{
		Name:       strings.TrimSpace(name),
		FileName:   fileName,
		AuthorLink: strings.TrimSpace(link),
	}, true, nil
}
