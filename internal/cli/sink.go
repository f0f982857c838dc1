package cli

import (
	"fmt"
	"strings"

	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// stdoutSink prints job emissions line by line, one event per line, the
// way the daemon's debug tooling renders backend output.
type stdoutSink struct {
	failed bool
}

func (s *stdoutSink) Package(p pkginfo.Package) {
	fmt.Printf("package\t%s\t%s\t%s\n", p.Info, p.ID, p.Summary)
}

func (s *stdoutSink) Progress(pct int) {
	fmt.Printf("progress\t%d%%\n", pct)
}

func (s *stdoutSink) RepoDetail(r pkginfo.Repo) {
	fmt.Printf("repo\t%s\t%v\t%s\n", r.ID, r.Enabled, r.Description)
}

func (s *stdoutSink) Details(d pkginfo.Details) {
	fmt.Printf("details\t%s\t%s\t%d\t%s\n", d.ID, d.License, d.Size, d.Description)
}

func (s *stdoutSink) Files(f pkginfo.FileList) {
	fmt.Printf("files\t%s\t%s\n", f.PackageID, strings.Join(f.Paths, ";"))
}

func (s *stdoutSink) Finished() {
	fmt.Println("finished")
}

func (s *stdoutSink) Failed(code job.ErrorCode, msg string) {
	s.failed = true
	fmt.Printf("failed\t%s\t%s\n", code, msg)
}
