package request

type Method int

const (
	MethodUninitialized Method = iota
	MethodGet
	MethodPost
)

// ParseMethod never fails: unknown tokens map to MethodUninitialized.
func ParseMethod(s string) Method {
	switch s {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	default:
		return MethodUninitialized
	}
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNINITIALIZED"
	}
}

type Version int

const (
	VersionUninitialized Version = iota
	Version11
	// Version20 is never produced by ParseVersion.
	Version20
)

// ParseVersion maps exactly "HTTP/1.1" to Version11. Anything else is
// VersionUninitialized.
func ParseVersion(s string) Version {
	if s == "HTTP/1.1" {
		return Version11
	}
	return VersionUninitialized
}

func (v Version) String() string {
	switch v {
	case Version11:
		return "HTTP/1.1"
	case Version20:
		return "HTTP/2.0"
	default:
		return "UNINITIALIZED"
	}
}

// Resource is the raw request target. No query parsing is done.
type Resource struct {
	Path string
}

func PathResource(p string) Resource {
	return Resource{Path: p}
}
