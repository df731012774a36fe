// Package testsuite contains adapter tests shared by all database backends.
package testsuite

import (
	"testing"
	"time"

	"github.com/chatwire/chat/server/db/common/test_data"
	"github.com/chatwire/chat/server/store/adapter"
	"github.com/chatwire/chat/server/store/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func RunUserCreate(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	for _, user := range td.Users {
		if err := adp.UserCreate(user); err != nil {
			t.Fatal(err)
		}
	}

	// Username is unique.
	dupe := *td.Users[0]
	dupe.Id = 12345
	if err := adp.UserCreate(&dupe); err != types.ErrDuplicate {
		t.Error("Should be duplicate error but got", err)
	}
}

func RunUserGet(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	// Test not found
	if _, err := adp.UserGet(types.Uid(12345)); !types.IsNotFound(err) {
		t.Error("Expected ErrNotFound, got", err)
	}

	got, err := adp.UserGet(td.Users[1].Id)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(td.Users[1], got, timeEqual); diff != "" {
		t.Errorf("User mismatch (-want +got):\n%s", diff)
	}
}

func RunUserGetAll(t *testing.T, adp adapter.Adapter, td *test_data.TestData) {
	t.Helper()

	// Test not found (dummy UIDs).
	got, err := adp.UserGetAll(types.Uid(12345), types.Uid(54321))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) > 0 {
		t.Error("result users should be zero length, got", len(got))
	}

	got, err = adp.UserGetAll(td.Users[0].Id, td.Users[2].Id, types.Uid(12345))
	if err != nil {
		t.Fatal(err)
	}
	want := []types.User{*td.Users[0], *td.Users[2]}
	if diff := cmp.Diff(want, got, timeEqual, sortUsers); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
}

// Databases may return timestamps in a different location.
var timeEqual = cmpopts.EquateApproxTime(time.Millisecond)

var sortUsers = cmpopts.SortSlices(func(a, b types.User) bool { return a.Id < b.Id })
