// Package luart owns the embedded Lua runtime that performs the actual
// package operations.
//
// Exactly one runtime exists per process. Its lifecycle is managed by
// Manager and is strictly nested inside the plugin's own load/unload
// lifecycle: Uninitialized -> Initialized -> Destroyed, with no
// re-initialization. Initialize registers the host callback module under the
// "pk" global and then loads the backend script; Destroy closes the Lua
// state exactly once.
//
// The Runtime type is the FFI seam between Go and the script. Calls into
// Lua go through narrow typed entry points (CallPackages, CallRepos,
// CallDetails, CallFileLists) that decode the returned tables into host
// record types and fail with a ShapeError when the returned value does not
// match the expected shape.
//
// gopher-lua's LState is not goroutine-safe. The runtime is protected by a
// mutex against accidental concurrent access from Go, but correctness relies
// on the backend's single-job-at-a-time contract.
package luart
