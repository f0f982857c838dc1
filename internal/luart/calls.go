package luart

import (
	"github.com/lupkg/lupkg/internal/pkginfo"
)

// callRows invokes a script function that returns a list of record tables.
// A nil or absent return value decodes as an empty list; anything else that
// is not a list of tables is a ShapeError.
func (rt *Runtime) callRows(fn string, args ...any) ([]map[string]any, error) {
	results, err := rt.Call(fn, args...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 || results[0] == nil {
		return nil, nil
	}

	var items []any
	switch v := results[0].(type) {
	case []any:
		items = v
	case map[string]any:
		// An empty Lua table decodes as an empty map.
		if len(v) == 0 {
			return nil, nil
		}
		return nil, shapeErr(fn, "got a record, want a list of records")
	default:
		return nil, shapeErr(fn, "got %T, want a list of records", v)
	}

	rows := make([]map[string]any, 0, len(items))
	for i, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, shapeErr(fn, "entry %d is %T, want a record", i+1, item)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CallPackages invokes a script function and decodes the returned list of
// package records.
func (rt *Runtime) CallPackages(fn string, args ...any) ([]pkginfo.Package, error) {
	rows, err := rt.callRows(fn, args...)
	if err != nil {
		return nil, err
	}

	pkgs := make([]pkginfo.Package, 0, len(rows))
	for i, row := range rows {
		id, err := rowID(fn, i, row)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkginfo.Package{
			ID:      id,
			Info:    pkginfo.ParseInfo(rowString(row, "info")),
			Summary: rowString(row, "summary"),
		})
	}
	return pkgs, nil
}

// CallRepos invokes a script function and decodes the returned list of
// repository records.
func (rt *Runtime) CallRepos(fn string, args ...any) ([]pkginfo.Repo, error) {
	rows, err := rt.callRows(fn, args...)
	if err != nil {
		return nil, err
	}

	repos := make([]pkginfo.Repo, 0, len(rows))
	for i, row := range rows {
		id := rowString(row, "repo_id")
		if id == "" {
			return nil, shapeErr(fn, "entry %d missing repo_id", i+1)
		}
		enabled, _ := row["enabled"].(bool)
		repos = append(repos, pkginfo.Repo{
			ID:          id,
			Description: rowString(row, "description"),
			Enabled:     enabled,
		})
	}
	return repos, nil
}

// CallDetails invokes a script function and decodes the returned list of
// package detail records.
func (rt *Runtime) CallDetails(fn string, args ...any) ([]pkginfo.Details, error) {
	rows, err := rt.callRows(fn, args...)
	if err != nil {
		return nil, err
	}

	details := make([]pkginfo.Details, 0, len(rows))
	for i, row := range rows {
		id, err := rowID(fn, i, row)
		if err != nil {
			return nil, err
		}
		size, err := rowSize(fn, i, row)
		if err != nil {
			return nil, err
		}
		details = append(details, pkginfo.Details{
			ID:          id,
			License:     rowString(row, "license"),
			Group:       rowString(row, "group"),
			Description: rowString(row, "description"),
			URL:         rowString(row, "url"),
			Size:        size,
		})
	}
	return details, nil
}

// CallFileLists invokes a script function and decodes the returned list of
// per-package file lists.
func (rt *Runtime) CallFileLists(fn string, args ...any) ([]pkginfo.FileList, error) {
	rows, err := rt.callRows(fn, args...)
	if err != nil {
		return nil, err
	}

	lists := make([]pkginfo.FileList, 0, len(rows))
	for i, row := range rows {
		id, err := rowID(fn, i, row)
		if err != nil {
			return nil, err
		}
		rawFiles, ok := row["files"].([]any)
		if !ok && row["files"] != nil {
			// An empty Lua table decodes as an empty map.
			if m, isMap := row["files"].(map[string]any); !isMap || len(m) != 0 {
				return nil, shapeErr(fn, "entry %d files is not a list", i+1)
			}
		}
		paths := make([]string, 0, len(rawFiles))
		for j, f := range rawFiles {
			s, ok := f.(string)
			if !ok {
				return nil, shapeErr(fn, "entry %d file %d is %T, want string", i+1, j+1, f)
			}
			paths = append(paths, s)
		}
		lists = append(lists, pkginfo.FileList{PackageID: id, Paths: paths})
	}
	return lists, nil
}

// rowSize extracts the size field of a record. A missing field is zero;
// integral numbers decode as int64 in the bridge, so anything else is a
// shape violation rather than a silent zero.
func rowSize(fn string, i int, row map[string]any) (int64, error) {
	switch v := row["size"].(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case float64:
		return 0, shapeErr(fn, "entry %d size %v is not an integer", i+1, v)
	default:
		return 0, shapeErr(fn, "entry %d size is %T, want integer", i+1, v)
	}
}

// rowID extracts and parses the package_id field of a record.
func rowID(fn string, i int, row map[string]any) (pkginfo.ID, error) {
	raw := rowString(row, "package_id")
	if raw == "" {
		return pkginfo.ID{}, shapeErr(fn, "entry %d missing package_id", i+1)
	}
	id, err := pkginfo.ParseID(raw)
	if err != nil {
		return pkginfo.ID{}, shapeErr(fn, "entry %d: %s", i+1, err)
	}
	return id, nil
}

func rowString(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}
