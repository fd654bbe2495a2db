package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Read     bool
	Write    bool
	Registry bool
	Schema   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Read = boolEnv("TL_DEBUG_READ")
	d.Write = boolEnv("TL_DEBUG_WRITE")
	d.Registry = boolEnv("TL_DEBUG_REGISTRY")
	d.Schema = boolEnv("TL_DEBUG_SCHEMA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Read() bool {
	return d.Read
}
func Write() bool {
	return d.Write
}
func Registry() bool {
	return d.Registry
}
func Schema() bool {
	return d.Schema
}
