package dispatch

// Payload is the loosely-typed event payload tree. Field shapes vary per
// event, so access goes through optional-field accessors that report absence
// instead of panicking.
type Payload map[string]any

// value walks nested objects along path and returns the leaf value.
func (p Payload) value(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var cur any = map[string]any(p)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path. Absent or non-string fields report false.
func (p Payload) String(path ...string) (string, bool) {
	v, ok := p.value(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int64 returns the integer at path. JSON numbers unmarshal as float64, so
// both representations are accepted.
func (p Payload) Int64(path ...string) (int64, bool) {
	v, ok := p.value(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// Map returns the nested object at path.
func (p Payload) Map(path ...string) (Payload, bool) {
	v, ok := p.value(path)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Payload(m), true
}

// StringOr returns the string at path, or fallback when absent. Some fields
// (e.g. a run's conclusion while in progress) are legitimately null.
func (p Payload) StringOr(fallback string, path ...string) string {
	if s, ok := p.String(path...); ok && s != "" {
		return s
	}
	return fallback
}
