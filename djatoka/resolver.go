package djatoka

import (
	"fmt"
	"regexp"
)

// error messages
var pidError = "unable to determine pid from %#v"

// defaultPidPattern matches the Fedora dissemination URLs the legacy
// front-ends send, e.g. .../objects/<pid>/... or .../get/<pid>/...
// The pid is taken from the last capturing group.
const defaultPidPattern = `^.*((objects)|(get))/([^/]*)/.*$`

// Resolver extracts the image pid from a legacy content URL.
type Resolver struct {
	pattern *regexp.Regexp
}

// NewResolver compiles the given pattern, falling back to the Fedora
// one when empty.
func NewResolver(pattern string) (*Resolver, error) {
	if pattern == "" {
		pattern = defaultPidPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Resolver{pattern: re}, nil
}

// Pid returns the identifier embedded in the given URL.
func (rs *Resolver) Pid(url string) (string, error) {
	m := rs.pattern.FindStringSubmatch(url)
	if m == nil {
		return "", Error{UnresolvableIdentifier, fmt.Sprintf(pidError, url)}
	}
	return m[len(m)-1], nil
}
