package topic

import (
	"testing"

	"github.com/chatwire/chat/server/store/types"
	"github.com/google/go-cmp/cmp"
)

func TestDirectSymmetric(t *testing.T) {
	if Direct(3, 7) != "direct:3:7" {
		t.Errorf("Unexpected name %q", Direct(3, 7))
	}
	if Direct(7, 3) != Direct(3, 7) {
		t.Errorf("Direct name must not depend on order: %q vs %q", Direct(7, 3), Direct(3, 7))
	}
	// Numeric, not lexicographic order.
	if Direct(10, 9) != "direct:9:10" {
		t.Errorf("Unexpected name %q", Direct(10, 9))
	}
}

func TestDirectInvalid(t *testing.T) {
	for _, pair := range [][2]types.Uid{{5, 5}, {0, 5}, {5, 0}} {
		if name := Direct(pair[0], pair[1]); name != "" {
			t.Errorf("Direct(%d, %d) must be invalid, got %q", pair[0], pair[1], name)
		}
	}
}

func TestDirectCollisionFree(t *testing.T) {
	// Naive concatenation would make these equal.
	if Direct(1, 23) == Direct(12, 3) {
		t.Error("Distinct pairs produced the same name")
	}
}

func TestGroupAndNotify(t *testing.T) {
	if Group(42) != "group:42" {
		t.Errorf("Unexpected group name %q", Group(42))
	}
	if Notify(7) != "notify:7" {
		t.Errorf("Unexpected notify name %q", Notify(7))
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		ids  []int64
	}{
		{"direct:3:7", KindDirect, []int64{3, 7}},
		{"group:42", KindGroup, []int64{42}},
		{"notify:7", KindNotify, []int64{7}},
	}
	for _, tc := range cases {
		kind, ids, err := Parse(tc.name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.name, err)
			continue
		}
		if kind != tc.kind {
			t.Errorf("Parse(%q) kind = %s, want %s", tc.name, kind, tc.kind)
		}
		if diff := cmp.Diff(tc.ids, ids); diff != "" {
			t.Errorf("Parse(%q) ids mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, name := range []string{
		"", "direct", "direct:7:3", "direct:3:3", "direct:3", "direct:3:7:9",
		"group:", "group:x", "group:-1", "group:007", "notify:0", "chat:1", "notify:1:2",
	} {
		if _, _, err := Parse(name); err != ErrMalformed {
			t.Errorf("Parse(%q) expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestOwnerOf(t *testing.T) {
	if uid, ok := OwnerOf("notify:7"); !ok || uid != 7 {
		t.Errorf("OwnerOf(notify:7) = %d, %v", uid, ok)
	}
	if _, ok := OwnerOf("group:7"); ok {
		t.Error("Group topic has no owner")
	}
}
