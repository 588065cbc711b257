package levels

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/chrono/common"
)

//go:embed *.txt levels.yaml
var LevelsFS embed.FS

// Source is one level as authored: a name and its character rows.
type Source struct {
	Index int
	Name  string
	Rows  []string
}

type manifest struct {
	Levels []manifestEntry `yaml:"levels"`
}

type manifestEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

var (
	catalogOnce sync.Once
	catalog     []manifestEntry
	catalogErr  error
)

func entries() ([]manifestEntry, error) {
	catalogOnce.Do(func() {
		data, err := fs.ReadFile(LevelsFS, "levels.yaml")
		if err != nil {
			catalogErr = fmt.Errorf("read manifest: %w", err)
			return
		}
		var m manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			catalogErr = fmt.Errorf("unmarshal manifest: %w", err)
			return
		}
		catalog = m.Levels
	})
	return catalog, catalogErr
}

// Count returns the number of levels in the manifest, or 0 if it is unreadable.
func Count() int {
	list, err := entries()
	if err != nil {
		return 0
	}
	return len(list)
}

// Names lists level names in play order.
func Names() []string {
	list, _ := entries()
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

// ClampIndex maps any index onto a playable one.
func ClampIndex(index int) int {
	return common.ClampInt(index, 0, Count()-1)
}

// Load reads the level at index after clamping it into range.
func Load(index int) (*Source, error) {
	list, err := entries()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("load level: %w", ErrEmptyGrid)
	}
	index = ClampIndex(index)
	entry := list[index]
	data, err := fs.ReadFile(LevelsFS, entry.File)
	if err != nil {
		return nil, fmt.Errorf("read level %q: %w", entry.File, err)
	}
	return &Source{Index: index, Name: entry.Name, Rows: ReadRows(data)}, nil
}

// ReadRows splits level text into rows, dropping blank lines and CR endings.
func ReadRows(data []byte) []string {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
