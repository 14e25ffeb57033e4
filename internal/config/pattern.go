package config

import (
	"fmt"
	"regexp"

	"github.com/bjaus/vl"
)

func compileOrDefault(expr, fallback string) (*regexp.Regexp, string) {
	re, err := vl.CompilePattern(expr)
	if err == nil {
		return re, ""
	}
	return regexp.MustCompile(fallback), fmt.Sprintf("%s; default value %q is used", err, fallback)
}
