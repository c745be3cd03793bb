package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Render bool
	Pred   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Render = boolEnv("UNPARSE_DEBUG_RENDER")
	d.Pred = boolEnv("UNPARSE_DEBUG_PRED")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Render() bool {
	return d.Render
}

func Pred() bool {
	return d.Pred
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
