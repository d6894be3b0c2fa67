package pet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoSave is returned by Load when there is no save file yet.
var ErrNoSave = errors.New("no saved pet")

// naiveTimeLayout matches timestamps written without a zone offset.
const naiveTimeLayout = "2006-01-02T15:04:05.999999999"

// saveRecord is the on-disk layout. Pointer fields let Load tell a missing
// key from a zero value.
type saveRecord struct {
	Name         *string `json:"name"`
	Hunger       *int    `json:"hunger"`
	Energy       *int    `json:"energy"`
	Happiness    *int    `json:"happiness"`
	Intelligence *int    `json:"intelligence"`
	Age          *int    `json:"age"`
	XP           *int    `json:"xp"`
	Level        *int    `json:"level"`
	Sick         *bool   `json:"sick"`
	Messy        *bool   `json:"messy"`
	LastUpdate   *string `json:"last_update"`
}

// Store reads and writes the pet's save file.
type Store struct {
	Path string
}

// NewStore returns a store for the given file, or the default save file in
// the working directory when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultSaveFile
	}
	return &Store{Path: path}
}

// Load reads the saved pet. It returns ErrNoSave when the file does not exist;
// any other failure means the save is unusable.
func (s *Store) Load() (*Pet, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("read save file: %w", err)
	}

	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	log.Printf("Loaded %s from %s (last update %s)", p.Name, s.Path, p.LastUpdate.Format(time.RFC3339))
	return p, nil
}

// Save overwrites the save file with the pet's full state.
func (s *Store) Save(p *Pet) error {
	data, err := Encode(p)
	if err != nil {
		return fmt.Errorf("encode pet: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".tamagotchi-*.json")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod save: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Remove deletes the save file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove save file: %w", err)
	}
	log.Printf("Removed save file %s", s.Path)
	return nil
}

// Encode serializes the pet in the save file layout.
func Encode(p *Pet) ([]byte, error) {
	ts := p.LastUpdate.Format(time.RFC3339Nano)
	rec := saveRecord{
		Name:         &p.Name,
		Hunger:       &p.Hunger,
		Energy:       &p.Energy,
		Happiness:    &p.Happiness,
		Intelligence: &p.Intelligence,
		Age:          &p.Age,
		XP:           &p.XP,
		Level:        &p.Level,
		Sick:         &p.Sick,
		Messy:        &p.Messy,
		LastUpdate:   &ts,
	}
	return json.MarshalIndent(rec, "", "  ")
}

// Decode parses a save file. Unknown or missing keys are rejected.
func Decode(data []byte) (*Pet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec saveRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("parse save: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse save: unexpected data after the save object")
	}
	if missing := rec.missingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("parse save: missing keys %s", strings.Join(missing, ", "))
	}

	ts, err := parseTimestamp(*rec.LastUpdate)
	if err != nil {
		return nil, fmt.Errorf("parse last_update: %w", err)
	}

	if err := rec.checkRanges(); err != nil {
		return nil, fmt.Errorf("parse save: %w", err)
	}

	p := &Pet{
		Name:         *rec.Name,
		Hunger:       *rec.Hunger,
		Energy:       *rec.Energy,
		Happiness:    *rec.Happiness,
		Intelligence: *rec.Intelligence,
		Age:          *rec.Age,
		XP:           *rec.XP,
		Sick:         *rec.Sick,
		Messy:        *rec.Messy,
		LastUpdate:   ts,
	}
	if p.Name == "" {
		p.Name = DefaultPetName
	}

	p.Level = LevelForXP(p.XP)
	if p.Level != *rec.Level {
		log.Printf("Saved level %d does not match xp %d, using level %d", *rec.Level, p.XP, p.Level)
	}
	return p, nil
}

func (r saveRecord) missingKeys() []string {
	var missing []string
	check := func(key string, present bool) {
		if !present {
			missing = append(missing, key)
		}
	}
	check("name", r.Name != nil)
	check("hunger", r.Hunger != nil)
	check("energy", r.Energy != nil)
	check("happiness", r.Happiness != nil)
	check("intelligence", r.Intelligence != nil)
	check("age", r.Age != nil)
	check("xp", r.XP != nil)
	check("level", r.Level != nil)
	check("sick", r.Sick != nil)
	check("messy", r.Messy != nil)
	check("last_update", r.LastUpdate != nil)
	return missing
}

func (r saveRecord) checkRanges() error {
	stats := []struct {
		key   string
		value int
	}{
		{"hunger", *r.Hunger},
		{"energy", *r.Energy},
		{"happiness", *r.Happiness},
		{"intelligence", *r.Intelligence},
	}
	for _, st := range stats {
		if st.value < MinStat || st.value > MaxStat {
			return fmt.Errorf("%s %d out of range [%d, %d]", st.key, st.value, MinStat, MaxStat)
		}
	}
	if *r.Age < 0 {
		return fmt.Errorf("negative age %d", *r.Age)
	}
	if *r.XP < 0 {
		return fmt.Errorf("negative xp %d", *r.XP)
	}
	return nil
}

// parseTimestamp accepts RFC 3339 and, for older saves, ISO 8601 timestamps
// without a zone offset, read in the local zone.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(naiveTimeLayout, s, time.Local)
}
