package pkginfo

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr error
	}{
		{
			name:  "full ID",
			input: "vim;9.1.0;x86_64;main",
			want:  ID{Name: "vim", Version: "9.1.0", Arch: "x86_64", Data: "main"},
		},
		{
			name:  "blank trailing fields",
			input: "vim;;;",
			want:  ID{Name: "vim"},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmptyID,
		},
		{
			name:    "too few fields",
			input:   "vim;9.1.0;x86_64",
			wantErr: ErrMalformedID,
		},
		{
			name:    "too many fields",
			input:   "vim;9.1.0;x86_64;main;extra",
			wantErr: ErrMalformedID,
		},
		{
			name:    "empty name field",
			input:   ";9.1.0;x86_64;main",
			wantErr: ErrMalformedID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseID(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIDString(t *testing.T) {
	id := ID{Name: "vim", Version: "9.1.0", Arch: "x86_64", Data: "main"}
	want := "vim;9.1.0;x86_64;main"
	if got := id.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Round trip.
	parsed, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("ParseID(String()) error = %v", err)
	}
	if parsed != id {
		t.Errorf("round trip = %+v, want %+v", parsed, id)
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs([]string{"a;1;;", "b;2;;"})
	if err != nil {
		t.Fatalf("ParseIDs() error = %v", err)
	}
	if len(ids) != 2 || ids[0].Name != "a" || ids[1].Name != "b" {
		t.Errorf("ParseIDs() = %+v", ids)
	}

	if _, err := ParseIDs([]string{"a;1;;", "broken"}); !errors.Is(err, ErrMalformedID) {
		t.Errorf("ParseIDs() with malformed entry error = %v, want ErrMalformedID", err)
	}
}

func TestInfoNames(t *testing.T) {
	if got := InfoInstalled.String(); got != "installed" {
		t.Errorf("InfoInstalled.String() = %q, want %q", got, "installed")
	}
	if got := ParseInfo("available"); got != InfoAvailable {
		t.Errorf("ParseInfo(available) = %v, want InfoAvailable", got)
	}
	if got := ParseInfo("nonsense"); got != InfoUnknown {
		t.Errorf("ParseInfo(nonsense) = %v, want InfoUnknown", got)
	}
}
