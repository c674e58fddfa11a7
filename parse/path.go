package parse

import "strings"

// Join forms the qualified path of a dataset named name inside group.
//
//   - Join("/", "d") -> "/d"
//   - Join("/g", "d") -> "/g/d"
//   - Join("/g/", "d") -> "/g/d"
func Join(group, name string) string {
	if strings.HasSuffix(group, "/") {
		return group + name
	}
	return group + "/" + name
}

// Segments splits a qualified path into its non-empty components.
// "/" has no segments.
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	res := parts[:0]
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
