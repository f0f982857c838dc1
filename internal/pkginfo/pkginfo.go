// Package pkginfo defines the package records the backend reports to the
// host: package identity, status info, details, repositories, and file
// lists.
package pkginfo

import (
	"errors"
	"fmt"
	"strings"
)

// ID codec errors.
var (
	ErrEmptyID     = errors.New("pkginfo: empty package ID")
	ErrMalformedID = errors.New("pkginfo: package ID must have four ';'-separated fields")
)

// idFieldCount is the number of fields in the wire form "name;version;arch;data".
const idFieldCount = 4

// ID identifies one package build. The wire form is
// "name;version;arch;data" where data names the originating repository.
type ID struct {
	Name    string
	Version string
	Arch    string
	Data    string
}

// ParseID decodes the wire form of a package ID. The name field must be
// non-empty; the rest may be blank.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, ErrEmptyID
	}
	fields := strings.Split(s, ";")
	if len(fields) != idFieldCount {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	if fields[0] == "" {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return ID{
		Name:    fields[0],
		Version: fields[1],
		Arch:    fields[2],
		Data:    fields[3],
	}, nil
}

// ParseIDs decodes a list of wire-form package IDs, failing on the first
// malformed entry.
func ParseIDs(ss []string) ([]ID, error) {
	ids := make([]ID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// String returns the wire form of the ID.
func (id ID) String() string {
	return strings.Join([]string{id.Name, id.Version, id.Arch, id.Data}, ";")
}

// Info is the status of a package relative to the local system.
type Info int

// Info values. Value 0 is the reserved unknown sentinel.
const (
	InfoUnknown Info = iota
	InfoInstalled
	InfoAvailable
	InfoUpdate
	InfoDownloading
	InfoRemoving
	InfoInstalling
)

var infoNames = map[Info]string{
	InfoUnknown:     "unknown",
	InfoInstalled:   "installed",
	InfoAvailable:   "available",
	InfoUpdate:      "update",
	InfoDownloading: "downloading",
	InfoRemoving:    "removing",
	InfoInstalling:  "installing",
}

// String returns the wire name of the info value.
func (i Info) String() string {
	if name, ok := infoNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseInfo resolves a wire name to an Info. Unrecognized names map to
// InfoUnknown.
func ParseInfo(name string) Info {
	for i, n := range infoNames {
		if n == name {
			return i
		}
	}
	return InfoUnknown
}

// Package is one package item reported to the host.
type Package struct {
	ID      ID
	Info    Info
	Summary string
}

// Details carries the extended metadata for one package.
type Details struct {
	ID          ID
	License     string
	Group       string
	Description string
	URL         string
	Size        int64
}

// Repo is one software repository known to the backend.
type Repo struct {
	ID          string
	Description string
	Enabled     bool
}

// FileList maps one package to the files it owns (or, for downloads, the
// files fetched for it).
type FileList struct {
	PackageID ID
	Paths     []string
}
