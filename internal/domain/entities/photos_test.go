package entities

import (
	"errors"
	"reflect"
	"testing"
)

func TestPhotoList_EncodeDecodeEmpty(t *testing.T) {
	var empty PhotoList
	if got := empty.Encode(); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}

	for _, raw := range []string{"", "  ", "[]", "null"} {
		l, err := DecodePhotoList(raw)
		if err != nil {
			t.Fatalf("decode %q: unexpected error: %v", raw, err)
		}
		if l == nil || len(l) != 0 {
			t.Fatalf("decode %q: expected empty non-nil list, got %#v", raw, l)
		}
	}
}

func TestPhotoList_DecodeKeepsOrder(t *testing.T) {
	l, err := DecodePhotoList(`["a","b","a"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(l, PhotoList{"a", "b", "a"}) {
		t.Fatalf("unexpected list: %#v", l)
	}
	if l.Encode() != `["a","b","a"]` {
		t.Fatalf("unexpected encoding: %s", l.Encode())
	}
}

func TestPhotoList_DecodeInvalid(t *testing.T) {
	_, err := DecodePhotoList(`{"a":1}`)
	if !errors.Is(err, ErrInvalidPhotoEncoding) {
		t.Fatalf("expected ErrInvalidPhotoEncoding, got %v", err)
	}
}

func TestPhotoList_AppendDoesNotAlias(t *testing.T) {
	base := make(PhotoList, 1, 4)
	base[0] = "a"
	first := base.Append("b")
	second := base.Append("c")
	if first[1] != "b" || second[1] != "c" {
		t.Fatalf("append aliased backing array: %v %v", first, second)
	}
}

func TestPhotoList_RemoveAt(t *testing.T) {
	l := PhotoList{"a", "b", "c"}

	out, ok := l.RemoveAt(1)
	if !ok || !reflect.DeepEqual(out, PhotoList{"a", "c"}) {
		t.Fatalf("expected [a c], got %v (ok=%v)", out, ok)
	}
	if !reflect.DeepEqual(l, PhotoList{"a", "b", "c"}) {
		t.Fatalf("source list mutated: %v", l)
	}

	for _, idx := range []int{-1, 3, 10} {
		if _, ok := l.RemoveAt(idx); ok {
			t.Fatalf("expected out of range for %d", idx)
		}
	}
}

func TestParsePhotoPhase(t *testing.T) {
	cases := map[string]PhotoPhase{"before": PhotoPhaseBefore, " AFTER ": PhotoPhaseAfter}
	for raw, want := range cases {
		got, ok := ParsePhotoPhase(raw)
		if !ok || got != want {
			t.Fatalf("parse %q: expected %s, got %s (ok=%v)", raw, want, got, ok)
		}
	}
	if _, ok := ParsePhotoPhase("during"); ok {
		t.Fatalf("expected unknown phase to fail")
	}
	if PhotoPhaseBefore.Field() != JobFieldBeforePhotos || PhotoPhaseAfter.Field() != JobFieldAfterPhotos {
		t.Fatalf("unexpected phase field mapping")
	}
}

func TestJobStatus_RankAndValid(t *testing.T) {
	if !(JobStatusPending.Rank() < JobStatusInProgress.Rank() && JobStatusInProgress.Rank() < JobStatusCompleted.Rank()) {
		t.Fatalf("statuses not ordered")
	}
	if JobStatus("archived").Valid() || JobStatus("archived").Rank() != -1 {
		t.Fatalf("unknown status should be invalid")
	}
	if !JobField("price").IsMutable() || JobField("id").IsMutable() || JobField("created_at").IsMutable() {
		t.Fatalf("unexpected whitelist membership")
	}
}
