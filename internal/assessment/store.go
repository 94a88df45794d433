package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ErrNoProfile is returned when no saved profile document exists yet.
var ErrNoProfile = errors.New("no saved profile")

// ToFile writes the profile document as indented JSON, creating parent
// directories as needed.
func (p *Profile) ToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// ProfileFromFile loads a saved profile document. The JSON is decoded into a
// generic map first so documents carrying extra fields written by other
// versions of the tool still load.
func ProfileFromFile(path string) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoProfile)
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoProfile)
	}

	var doc map[string]any
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding profile document: %w", err)
	}

	var profile Profile
	cfg := &mapstructure.DecoderConfig{
		Result:     &profile,
		TagName:    "json",
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding profile document: %w", err)
	}

	return &profile, nil
}
