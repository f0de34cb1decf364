// Package debug holds env-var gated trace switches for the recursive
// merge, projection and reference resolution code paths. It is
// dependency-free so any package can import it without cycles.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge   bool
	Project bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("DAPLUG_DEBUG_MERGE")
	d.Project = boolEnv("DAPLUG_DEBUG_PROJECT")
	d.Resolve = boolEnv("DAPLUG_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Project() bool {
	return d.Project
}
func Resolve() bool {
	return d.Resolve
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
