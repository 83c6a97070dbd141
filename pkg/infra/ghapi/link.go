package ghapi

import (
	"strings"
)

// Relation names used by GitHub pagination.
const (
	RelNext  = "next"
	RelPrev  = "prev"
	RelFirst = "first"
	RelLast  = "last"
)

// Links maps a relation name to its URL, as advertised by one response.
type Links map[string]string

// Next returns the URL of the next page, or "" on the last page.
func (x Links) Next() string {
	return x[RelNext]
}

func (x Links) Has(rel string) bool {
	_, ok := x[rel]
	return ok
}

// ParseLinks parses a Link header value such as
//
//	<https://api.github.com/user/repos?page=2>; rel="next", <https://api.github.com/user/repos?page=5>; rel="last"
//
// Malformed entries are skipped. An empty or unparsable header results in an
// empty map. Relation names are kept as written.
func ParseLinks(header string) Links {
	links := Links{}
	for _, entry := range splitEntries(header) {
		target, rels, ok := parseEntry(entry)
		if !ok {
			continue
		}
		for _, rel := range rels {
			links[rel] = target
		}
	}
	return links
}

// splitEntries splits header on commas outside of angle brackets and quotes.
func splitEntries(header string) []string {
	var (
		entries  []string
		start    int
		inURL    bool
		inQuotes bool
	)

	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '<':
			if !inQuotes {
				inURL = true
			}
		case '>':
			if !inQuotes {
				inURL = false
			}
		case '"':
			if !inURL {
				inQuotes = !inQuotes
			}
		case ',':
			if !inURL && !inQuotes {
				entries = append(entries, header[start:i])
				start = i + 1
			}
		}
	}
	return append(entries, header[start:])
}

// parseEntry parses `<URL>; rel="name"`. Other parameters are ignored.
func parseEntry(entry string) (string, []string, bool) {
	entry = strings.TrimSpace(entry)
	if !strings.HasPrefix(entry, "<") {
		return "", nil, false
	}

	end := strings.IndexByte(entry, '>')
	if end < 0 {
		return "", nil, false
	}
	target := strings.TrimSpace(entry[1:end])
	if target == "" {
		return "", nil, false
	}

	for _, param := range strings.Split(entry[end+1:], ";") {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}

		rels := strings.Fields(value)
		if len(rels) == 0 {
			return "", nil, false
		}
		return target, rels, true
	}

	return "", nil, false
}
