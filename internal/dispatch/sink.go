package dispatch

import (
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/log"
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// guardedSink wraps the host sink, tying terminal signals to the job's
// state machine so exactly one of them reaches the host. Intermediate
// emissions after finalization are dropped: the handle must not be used
// past its completion call.
type guardedSink struct {
	j    *job.Job
	sink job.Sink
}

func newGuardedSink(j *job.Job, sink job.Sink) *guardedSink {
	return &guardedSink{j: j, sink: sink}
}

func (g *guardedSink) Package(p pkginfo.Package) {
	if g.j.Finalized() {
		g.dropped("package")
		return
	}
	g.sink.Package(p)
}

func (g *guardedSink) Progress(percent int) {
	if g.j.Finalized() {
		g.dropped("progress")
		return
	}
	g.sink.Progress(percent)
}

func (g *guardedSink) RepoDetail(r pkginfo.Repo) {
	if g.j.Finalized() {
		g.dropped("repo-detail")
		return
	}
	g.sink.RepoDetail(r)
}

func (g *guardedSink) Details(d pkginfo.Details) {
	if g.j.Finalized() {
		g.dropped("details")
		return
	}
	g.sink.Details(d)
}

func (g *guardedSink) Files(f pkginfo.FileList) {
	if g.j.Finalized() {
		g.dropped("files")
		return
	}
	g.sink.Files(f)
}

// Finished forwards the terminal success signal if this is the job's first
// terminal transition.
func (g *guardedSink) Finished() {
	if err := g.j.Complete(job.StatusFinished); err != nil {
		g.dropped("finished")
		return
	}
	g.sink.Finished()
}

// Failed forwards the terminal failure signal if this is the job's first
// terminal transition.
func (g *guardedSink) Failed(code job.ErrorCode, msg string) {
	if err := g.j.Complete(job.StatusFailed); err != nil {
		g.dropped("failed")
		return
	}
	g.sink.Failed(code, msg)
}

func (g *guardedSink) dropped(signal string) {
	log.WithJob(g.j.ID()).Warn("signal after job finalization dropped",
		"signal", signal, "role", g.j.Role().String())
}
