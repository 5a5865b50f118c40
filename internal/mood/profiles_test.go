package mood

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfilesAreValid(t *testing.T) {
	profiles := DefaultProfiles()

	if err := ValidateProfiles(profiles); err != nil {
		t.Fatalf("ValidateProfiles(DefaultProfiles()) = %v", err)
	}
	if len(profiles) < 5 {
		t.Errorf("DefaultProfiles() returned %d profiles, want at least 5", len(profiles))
	}
}

func TestValidateProfiles(t *testing.T) {
	valid := Attributes{Valence: 0.5, Energy: 0.5, Tempo: 120, Danceability: 0.5}

	tests := []struct {
		name     string
		profiles []Profile
		wantErr  bool
	}{
		{
			name:    "empty set",
			wantErr: true,
		},
		{
			name:     "single valid profile",
			profiles: []Profile{{Name: "happy", Target: valid}},
		},
		{
			name: "duplicate names",
			profiles: []Profile{
				{Name: "happy", Target: valid},
				{Name: "happy", Target: valid},
			},
			wantErr: true,
		},
		{
			name:     "empty name",
			profiles: []Profile{{Name: "", Target: valid}},
			wantErr:  true,
		},
		{
			name: "valence above 1",
			profiles: []Profile{
				{Name: "happy", Target: Attributes{Valence: 1.2, Energy: 0.5, Tempo: 120, Danceability: 0.5}},
			},
			wantErr: true,
		},
		{
			name: "negative energy",
			profiles: []Profile{
				{Name: "happy", Target: Attributes{Valence: 0.5, Energy: -0.1, Tempo: 120, Danceability: 0.5}},
			},
			wantErr: true,
		},
		{
			name: "tempo below floor",
			profiles: []Profile{
				{Name: "happy", Target: Attributes{Valence: 0.5, Energy: 0.5, Tempo: 20, Danceability: 0.5}},
			},
			wantErr: true,
		},
		{
			name: "tempo above ceiling",
			profiles: []Profile{
				{Name: "happy", Target: Attributes{Valence: 0.5, Energy: 0.5, Tempo: 300, Danceability: 0.5}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfiles(tt.profiles)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfiles() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "profiles.json")
	content := `[
		{"name": "bright", "target": {"valence": 0.9, "energy": 0.8, "tempo": 128, "danceability": 0.7}},
		{"name": "moody", "target": {"valence": 0.2, "energy": 0.3, "tempo": 80, "danceability": 0.3}}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles() unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("LoadProfiles() returned %d profiles, want 2", len(profiles))
	}
	if profiles[0].Name != "bright" || profiles[1].Name != "moody" {
		t.Errorf("LoadProfiles() order = [%s, %s], want file order preserved", profiles[0].Name, profiles[1].Name)
	}
	if profiles[0].Target.Tempo != 128 {
		t.Errorf("LoadProfiles() tempo = %v, want 128", profiles[0].Target.Tempo)
	}
}

func TestLoadProfilesErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadProfiles(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadProfiles() expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"not": "an array"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfiles(bad); err == nil {
		t.Error("LoadProfiles() expected error for malformed JSON")
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfiles(empty); !errors.Is(err, ErrNoProfiles) {
		t.Error("LoadProfiles() expected ErrNoProfiles for empty set")
	}
}
