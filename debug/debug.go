package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match  bool
	Append bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("PYSET_DEBUG_MATCH")
	d.Append = boolEnv("PYSET_DEBUG_APPEND")
	d.Parse = boolEnv("PYSET_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Append() bool {
	return d.Append
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
