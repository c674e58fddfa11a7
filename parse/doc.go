// Package parse builds the structural index of an h5dump report.
//
// # Usage
//
//	lines, err := source.ReadFile("file.dump.gz")
//	if err != nil {
//	    return err
//	}
//	d, err := parse.Parse(lines)
//	if err != nil {
//	    return err
//	}
//	b, ok := d.Get("/sub/ds1") // b.Start, b.End are line indices
//
// Parse extracts the container, group and dataset names from header lines
// and computes the inclusive line range of every group and dataset block.
// Groups are keyed by their raw name, datasets by the name joined to the
// path of the group which directly contains them.
//
// # Related Packages
//
//   - github.com/h5dump-format/h5dump/token - header patterns and brace balancing
//   - github.com/h5dump-format/h5dump/source - reading dump lines from files
package parse
