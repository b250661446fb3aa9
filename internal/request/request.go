package request

import "strings"

// Part is one query parameter of a request URL.
// A Part with an empty Key is a literal query block emitted verbatim.
type Part struct {
	Key      string
	Value    string
	Optional bool
}

// Param returns a mandatory key=value part. An empty value still serializes as "key=".
func Param(key, value string) Part {
	return Part{Key: key, Value: value}
}

// Optional returns a part that is dropped when its value is empty.
func Optional(key, value string) Part {
	return Part{Key: key, Value: value, Optional: true}
}

// Raw returns a literal query block such as "tc=1&o=-price".
// An empty block contributes nothing.
func Raw(block string) Part {
	return Part{Value: block, Optional: true}
}

func (p Part) omitted() bool {
	return p.Optional && p.Value == ""
}

func (p Part) String() string {
	if p.Key == "" {
		return p.Value
	}
	return p.Key + "=" + p.Value
}

// Build joins base and parts into a URL, in the order given.
// Values are not escaped.
func Build(base string, parts ...Part) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.omitted() {
			continue
		}
		kept = append(kept, p.String())
	}
	if len(kept) == 0 {
		return base
	}
	return base + "?" + strings.Join(kept, "&")
}
