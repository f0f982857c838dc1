package job

import "github.com/lupkg/lupkg/internal/pkginfo"

// Sink is the host callback surface a handler reports through. The host
// supplies one sink per job. A handler may emit any number of intermediate
// signals, then must deliver exactly one terminal signal, Finished or
// Failed; the dispatch core enforces the exactly-once property.
type Sink interface {
	// Package reports one discovered or affected package.
	Package(p pkginfo.Package)

	// Progress reports completion percentage in [0, 100].
	Progress(percent int)

	// RepoDetail reports one known repository.
	RepoDetail(r pkginfo.Repo)

	// Details reports extended metadata for one package.
	Details(d pkginfo.Details)

	// Files reports the file list owned by (or downloaded for) one package.
	Files(f pkginfo.FileList)

	// Finished delivers the terminal success signal.
	Finished()

	// Failed delivers the terminal failure signal.
	Failed(code ErrorCode, msg string)
}

// TransactionFlags modify how a job's operation is carried out.
type TransactionFlags uint64

// Transaction flags.
const (
	FlagNone         TransactionFlags = 0
	FlagOnlyTrusted  TransactionFlags = 1 << 0 // refuse unsigned packages
	FlagSimulate     TransactionFlags = 1 << 1 // resolve and report, change nothing
	FlagOnlyDownload TransactionFlags = 1 << 2 // fetch but do not install
)

// Has reports whether all bits of f are set.
func (t TransactionFlags) Has(f TransactionFlags) bool {
	return t&f == f
}
