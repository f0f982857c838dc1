package luart

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lupkg/lupkg/internal/log"
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// HostModuleName is the global the backend script reaches the host through.
const HostModuleName = "pk"

// registerHostModule installs the pk module. The script calls back into the
// plugin through it: emitting packages and progress for the job currently
// executing, and logging through the backend's logger.
//
// Emissions outside a job (no bound sink) are dropped; the script has no
// job to report against.
func registerHostModule(rt *Runtime) {
	L := rt.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"package":  rt.luaPackage,
		"progress": rt.luaProgress,
		"log":      rt.luaLog,
	})
	L.SetGlobal(HostModuleName, mod)
}

// luaPackage implements pk.package(package_id, info, summary).
func (rt *Runtime) luaPackage(L *lua.LState) int {
	idStr := L.CheckString(1)
	infoStr := L.CheckString(2)
	summary := L.OptString(3, "")

	id, err := pkginfo.ParseID(idStr)
	if err != nil {
		L.RaiseError("pk.package: %s", err.Error())
		return 0
	}

	if sink := rt.currentSink(); sink != nil {
		sink.Package(pkginfo.Package{
			ID:      id,
			Info:    pkginfo.ParseInfo(infoStr),
			Summary: summary,
		})
	}
	return 0
}

// luaProgress implements pk.progress(percent). Values are clamped to
// [0, 100].
func (rt *Runtime) luaProgress(L *lua.LState) int {
	pct := L.CheckInt(1)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	if sink := rt.currentSink(); sink != nil {
		sink.Progress(pct)
	}
	return 0
}

// luaLog implements pk.log(message).
func (rt *Runtime) luaLog(L *lua.LState) int {
	log.WithComponent("script").Info(L.CheckString(1))
	return 0
}
