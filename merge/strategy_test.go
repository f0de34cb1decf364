package merge

import (
	"strings"
	"testing"
)

func TestStrategyText(t *testing.T) {
	var ls ListStrategy
	if err := ls.UnmarshalText([]byte("replace")); err != nil {
		t.Fatal(err)
	}
	if ls != ListReplace {
		t.Errorf("got %s", ls)
	}
	if err := ls.UnmarshalText([]byte("append")); err == nil {
		t.Error("expected error for unknown list strategy")
	} else if !strings.Contains(err.Error(), "append") {
		t.Errorf("error should name the invalid option: %v", err)
	}

	var ds DictStrategy
	if err := ds.UnmarshalText([]byte("remove")); err != nil {
		t.Fatal(err)
	}
	if ds != DictRemove {
		t.Errorf("got %s", ds)
	}
	if err := ds.UnmarshalText([]byte("merge")); err == nil {
		t.Error("expected error for unknown dict strategy")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err != nil {
		t.Errorf("zero config should be valid: %v", err)
	}
	if err := (Config{Lists: ListRemove, Dicts: DictRemove}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	err := (Config{Lists: ListStrategy(42)}).Validate()
	if err == nil || !strings.Contains(err.Error(), "42") {
		t.Errorf("validate should name the invalid value, got %v", err)
	}
}
