package client

// Fields maps column names to the values to write. A nil value stores NULL.
type Fields map[string]any

// IsColumn reports whether name is a writable column.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Split separates known columns from unrecognized names. The known part keeps
// its values; unknown names are returned in no particular order.
func (f Fields) Split() (known Fields, unknown []string) {
	known = make(Fields, len(f))
	for name, value := range f {
		if IsColumn(name) {
			known[name] = value
		} else {
			unknown = append(unknown, name)
		}
	}
	return known, unknown
}

// Ordered returns the known column names present in f, in table order.
func (f Fields) Ordered() []string {
	names := make([]string, 0, len(f))
	for _, c := range Columns {
		if _, ok := f[c]; ok {
			names = append(names, c)
		}
	}
	return names
}

// Record builds a client from f, ignoring unknown names.
func (f Fields) Record() *Client {
	c := &Client{}
	for name, value := range f {
		c.Set(name, value)
	}
	return c
}
