package types

import (
	"fmt"
	"testing"
)

func TestParseUid(t *testing.T) {
	cases := []struct {
		in   string
		want Uid
	}{
		{"1", Uid(1)},
		{"42", Uid(42)},
		{"9223372036854775807", Uid(9223372036854775807)},
		{"0", ZeroUid},
		{"-5", ZeroUid},
		{"", ZeroUid},
		{"abc", ZeroUid},
		{"12a", ZeroUid},
	}
	for _, tc := range cases {
		if got := ParseUid(tc.in); got != tc.want {
			t.Errorf("ParseUid(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestUidStringRoundTrip(t *testing.T) {
	for _, uid := range []Uid{1, 7, 100500} {
		if got := ParseUid(uid.String()); got != uid {
			t.Errorf("round trip of %d produced %d", uid, got)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Error("ErrNotFound must be reported as not found")
	}
	if !IsNotFound(fmt.Errorf("loading group: %w", ErrNotFound)) {
		t.Error("Wrapped ErrNotFound must be reported as not found")
	}
	if IsNotFound(ErrInternal) {
		t.Error("ErrInternal is not a not-found error")
	}
}

func TestFriendRequestOther(t *testing.T) {
	fr := &FriendRequest{From: 3, To: 7}
	if fr.Other(3) != 7 || fr.Other(7) != 3 {
		t.Errorf("Other() returned wrong party: %d, %d", fr.Other(3), fr.Other(7))
	}
}

func TestUidSliceContains(t *testing.T) {
	us := UidSlice{1, 5, 9}
	if !us.Contains(5) || us.Contains(4) {
		t.Error("UidSlice.Contains is broken")
	}
}
