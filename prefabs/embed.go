package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskDir holds on-disk overrides, relative to the working directory.
const DiskDir = "prefabs"

// Origin says where a spec file was read from.
type Origin int

const (
	OriginMissing Origin = iota
	OriginEmbedded
	OriginDisk
)

func (o Origin) String() string {
	switch o {
	case OriginEmbedded:
		return "embedded"
	case OriginDisk:
		return "disk"
	}
	return "missing"
}

// Load returns a spec file. A copy under DiskDir wins over the embedded one,
// so tuning can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	data, _, err := read(name)
	return data, err
}

// Locate reports which copy Load would use for name.
func Locate(name string) Origin {
	_, origin, _ := read(name)
	return origin
}

func read(name string) ([]byte, Origin, error) {
	clean := cleanPrefabPath(name)
	if clean == "" {
		return nil, OriginMissing, fs.ErrNotExist
	}
	data, err := os.ReadFile(diskPrefabPath(clean))
	if err == nil {
		return data, OriginDisk, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, OriginMissing, err
	}
	data, err = PrefabsFS.ReadFile(clean)
	if err != nil {
		return nil, OriginMissing, err
	}
	return data, OriginEmbedded, nil
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, DiskDir+"/")
	return strings.TrimPrefix(s, "./")
}

func diskPrefabPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
