// Package runfile handles helix.toml run configuration.
package runfile

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Runfile represents a helix.toml file: optional run settings that sit next
// to a program so repeated invocations don't need flags.
type Runfile struct {
	Run   Run   `toml:"run"`
	Input Input `toml:"input"`

	// Dir is the directory containing the helix.toml file (set at load time).
	Dir string `toml:"-"`
}

// Run holds interpreter settings.
type Run struct {
	// Budget is the instruction ceiling; 0 means unlimited.
	Budget int `toml:"budget"`
	// Trace enables per-instruction debug logging.
	Trace bool `toml:"trace"`
	// Log is an extra log sink, fanned out with stderr.
	Log string `toml:"log"`
}

// Input optionally replaces stdin with a fixed value sequence.
type Input struct {
	Values []int `toml:"values"`
}

// Load reads a helix.toml file.
func Load(path string) (*Runfile, error) {
	var rf Runfile
	if _, err := toml.DecodeFile(path, &rf); err != nil {
		return nil, err
	}
	rf.Dir = filepath.Dir(path)
	return &rf, nil
}

// Find looks for a helix.toml next to the given program file. A missing file
// is not an error; the caller gets nil.
func Find(programPath string) (*Runfile, error) {
	path := filepath.Join(filepath.Dir(programPath), "helix.toml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return Load(path)
}

// LogPath resolves the log sink relative to the runfile's directory.
func (rf *Runfile) LogPath() string {
	if rf.Run.Log == "" {
		return ""
	}
	if filepath.IsAbs(rf.Run.Log) {
		return rf.Run.Log
	}
	return filepath.Join(rf.Dir, rf.Run.Log)
}
