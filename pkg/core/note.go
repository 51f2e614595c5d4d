package core

// Note is the record stored for a single date-hour.
// IsLocked is part of the persisted shape but no operation ever sets it;
// it is carried through load/persist untouched.
type Note struct {
	Content  string `json:"content" yaml:"content"`
	IsLocked bool   `json:"is_locked" yaml:"is_locked"`
}

// Notes maps a note key ("YYYY-MM-DD-H") to its record.
type Notes map[string]Note

// Clone returns an independent copy of the mapping. A nil receiver yields an
// empty, non-nil mapping.
func (n Notes) Clone() Notes {
	out := make(Notes, len(n))
	for k, v := range n {
		out[k] = v
	}
	return out
}
