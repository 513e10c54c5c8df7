package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pricebook/internal/messages"
)

type preferences struct {
	Theme string `toml:"theme"`
}

// PreferenceFile is the TOML file holding user display preferences.
type PreferenceFile struct {
	path string
}

// NewPreferenceFile returns a PreferenceFile at path.
func NewPreferenceFile(path string) *PreferenceFile {
	return &PreferenceFile{path: path}
}

// Path returns the file location.
func (p *PreferenceFile) Path() string {
	return p.path
}

// Load returns the stored theme. ok is false when the file or the key is
// missing, or the value is not a recognized theme.
func (p *PreferenceFile) Load() (Theme, bool, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.ThemeReadFmt, p.path, err)
	}
	var prefs preferences
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return "", false, fmt.Errorf(messages.ThemeParseFmt, p.path, err)
	}
	t, err := Parse(prefs.Theme)
	if err != nil {
		return "", false, nil
	}
	return t, true, nil
}

// Save stores t. Concurrent writers are serialized with an advisory lock and
// the file is replaced atomically.
func (p *PreferenceFile) Save(t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.ThemeCreateDirFmt, dir, err)
	}
	return withFileLock(p.path+".lock", func() error {
		data, err := toml.Marshal(preferences{Theme: string(t)})
		if err != nil {
			return fmt.Errorf(messages.ThemeWriteFmt, p.path, err)
		}
		tmp, err := os.CreateTemp(dir, ".preferences-*.toml")
		if err != nil {
			return fmt.Errorf(messages.ThemeWriteFmt, p.path, err)
		}
		tmpName := tmp.Name()
		if _, err := tmp.Write(data); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return fmt.Errorf(messages.ThemeWriteFmt, p.path, err)
		}
		if err := tmp.Close(); err != nil {
			_ = os.Remove(tmpName)
			return fmt.Errorf(messages.ThemeWriteFmt, p.path, err)
		}
		if err := os.Rename(tmpName, p.path); err != nil {
			_ = os.Remove(tmpName)
			return fmt.Errorf(messages.ThemeWriteFmt, p.path, err)
		}
		return nil
	})
}

// Toggle flips the effective theme and stores the result.
func (p *PreferenceFile) Toggle() (Theme, error) {
	current, err := Effective(p)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := p.Save(next); err != nil {
		return "", err
	}
	return next, nil
}
