package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Source   bool
	Scan     bool
	Groups   bool
	Datasets bool
	Match    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Source = boolEnv("H5DUMP_DEBUG_SOURCE")
	d.Scan = boolEnv("H5DUMP_DEBUG_SCAN")
	d.Groups = boolEnv("H5DUMP_DEBUG_GROUPS")
	d.Datasets = boolEnv("H5DUMP_DEBUG_DATASETS")
	d.Match = boolEnv("H5DUMP_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Source() bool {
	return d.Source
}
func Scan() bool {
	return d.Scan
}
func Groups() bool {
	return d.Groups
}
func Datasets() bool {
	return d.Datasets
}
func Match() bool {
	return d.Match
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any, []string:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
