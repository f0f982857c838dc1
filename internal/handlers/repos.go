package handlers

import (
	"github.com/lupkg/lupkg/internal/dispatch"
	"github.com/lupkg/lupkg/internal/job"
	"github.com/lupkg/lupkg/internal/luart"
)

// RepoList handles the get-repo-list role.
type RepoList struct{}

// Execute implements dispatch.Handler.
func (RepoList) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	repos, err := rt.CallRepos(FnGetRepoList, args.FilterNames())
	if err != nil {
		sink.Failed(job.ErrorScript, err.Error())
		return nil
	}

	for _, r := range repos {
		sink.RepoDetail(r)
	}
	sink.Finished()
	return nil
}

// RepoEnable handles the repo-enable role.
type RepoEnable struct{}

// Execute implements dispatch.Handler.
func (RepoEnable) Execute(j *job.Job, args dispatch.Args, rt *luart.Runtime, sink job.Sink) error {
	if args.RepoID == "" {
		sink.Failed(job.ErrorRepoNotFound, "repo ID not set")
		return nil
	}

	if _, err := rt.Call(FnRepoEnable, args.RepoID, args.Enabled); err != nil {
		sink.Failed(job.ErrorScript, err.Error())
		return nil
	}
	sink.Finished()
	return nil
}
