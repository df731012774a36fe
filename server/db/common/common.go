// Package common contains utility methods used by all adapters.
package common

import (
	t "github.com/chatwire/chat/server/store/types"
)

// OrderedPair returns the two user IDs with the smaller one first. Friendships are
// stored under the ordered pair so that a request in either direction hits the
// same unique index.
func OrderedPair(a, b t.Uid) (t.Uid, t.Uid) {
	if a.Compare(b) > 0 {
		return b, a
	}
	return a, b
}

// NormalizeUids drops zero and repeated IDs while keeping the original order.
func NormalizeUids(uids []t.Uid) []t.Uid {
	if len(uids) == 0 {
		return nil
	}
	seen := make(map[t.Uid]struct{}, len(uids))
	result := make([]t.Uid, 0, len(uids))
	for _, uid := range uids {
		if uid.IsZero() {
			continue
		}
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		result = append(result, uid)
	}
	return result
}

// Difference returns the elements of 'all' which are not present in 'exclude'.
func Difference(all, exclude []t.Uid) []t.Uid {
	skip := t.UidSlice(exclude)
	var result []t.Uid
	for _, uid := range all {
		if !skip.Contains(uid) {
			result = append(result, uid)
		}
	}
	return result
}

// Intersection returns the elements of 'all' which are also present in 'keep'.
func Intersection(all, keep []t.Uid) []t.Uid {
	only := t.UidSlice(keep)
	var result []t.Uid
	for _, uid := range all {
		if only.Contains(uid) {
			result = append(result, uid)
		}
	}
	return result
}

// UidsToInterfaces converts IDs into arguments for an IN (...) query.
func UidsToInterfaces(uids []t.Uid) []interface{} {
	args := make([]interface{}, len(uids))
	for i, uid := range uids {
		args[i] = int64(uid)
	}
	return args
}
