package merge

import "fmt"

// ListStrategy controls how two arrays reconcile during a merge.
type ListStrategy int

const (
	// ListAdd appends incoming items not already present in base.
	ListAdd ListStrategy = iota
	// ListRemove drops base items that equal any incoming item.
	ListRemove
	// ListReplace discards base and keeps incoming verbatim.
	ListReplace
)

func (s ListStrategy) String() string {
	v, ok := map[ListStrategy]string{
		ListAdd:     "add",
		ListRemove:  "remove",
		ListReplace: "replace",
	}[s]
	if ok {
		return v
	}
	return fmt.Sprintf("<unknown list strategy %d>", int(s))
}

func (s ListStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ListStrategy) UnmarshalText(d []byte) error {
	v, ok := map[string]ListStrategy{
		"add":     ListAdd,
		"remove":  ListRemove,
		"replace": ListReplace,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized list strategy %q", d)
	}
	*s = v
	return nil
}

// DictStrategy controls how two objects reconcile during a merge.
type DictStrategy int

const (
	// DictUpsert sets or overwrites incoming keys, recursing where both
	// sides hold containers, and keeps base-only keys.
	DictUpsert DictStrategy = iota
	// DictRemove deletes incoming keys from base. Incoming values are
	// used only as a deletion key set; their content is ignored.
	DictRemove
)

func (s DictStrategy) String() string {
	v, ok := map[DictStrategy]string{
		DictUpsert: "upsert",
		DictRemove: "remove",
	}[s]
	if ok {
		return v
	}
	return fmt.Sprintf("<unknown dict strategy %d>", int(s))
}

func (s DictStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DictStrategy) UnmarshalText(d []byte) error {
	v, ok := map[string]DictStrategy{
		"upsert": DictUpsert,
		"remove": DictRemove,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized dict strategy %q", d)
	}
	*s = v
	return nil
}

// Config selects the list and dict strategies for one merge call. The
// zero value is the default configuration (add, upsert). Configuration
// applies uniformly at every recursion level.
type Config struct {
	Lists ListStrategy
	Dicts DictStrategy
}

// Validate rejects unrecognized strategy values. Merge validates once at
// its entry point; recursion never re-checks.
func (c Config) Validate() error {
	switch c.Lists {
	case ListAdd, ListRemove, ListReplace:
	default:
		return fmt.Errorf("unrecognized list strategy %d", int(c.Lists))
	}
	switch c.Dicts {
	case DictUpsert, DictRemove:
	default:
		return fmt.Errorf("unrecognized dict strategy %d", int(c.Dicts))
	}
	return nil
}
