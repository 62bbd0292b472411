package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPhotoEncoding = errors.New("invalid photo collection encoding")

// PhotoPhase identifies one of the two evidence collections of a job.
type PhotoPhase string

const (
	PhotoPhaseBefore PhotoPhase = "before"
	PhotoPhaseAfter  PhotoPhase = "after"
)

// ParsePhotoPhase accepts "before" or "after" (case-insensitive).
func ParsePhotoPhase(raw string) (PhotoPhase, bool) {
	switch PhotoPhase(strings.ToLower(strings.TrimSpace(raw))) {
	case PhotoPhaseBefore:
		return PhotoPhaseBefore, true
	case PhotoPhaseAfter:
		return PhotoPhaseAfter, true
	}
	return "", false
}

// Field returns the job column holding the collection for the phase.
func (p PhotoPhase) Field() JobField {
	if p == PhotoPhaseBefore {
		return JobFieldBeforePhotos
	}
	return JobFieldAfterPhotos
}

// PhotoList is an ordered sequence of opaque image references (usually data URIs).
// Order is capture order and duplicates are allowed.
type PhotoList []string

// Encode serializes the list as a JSON array. A nil list encodes as "[]".
func (l PhotoList) Encode() string {
	if len(l) == 0 {
		return "[]"
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		// []string always marshals
		return "[]"
	}
	return string(b)
}

// Append returns a new list with ref at the end.
func (l PhotoList) Append(ref string) PhotoList {
	out := make(PhotoList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, ref)
}

// RemoveAt returns a new list without the element at index.
// ok is false when index is out of range.
func (l PhotoList) RemoveAt(index int) (PhotoList, bool) {
	if index < 0 || index >= len(l) {
		return l, false
	}
	out := make(PhotoList, 0, len(l)-1)
	out = append(out, l[:index]...)
	return append(out, l[index+1:]...), true
}

// DecodePhotoList parses a stored collection. Missing, blank or "null" values
// decode to an empty, non-nil list.
func DecodePhotoList(raw string) (PhotoList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return PhotoList{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhotoEncoding, err)
	}
	if out == nil {
		return PhotoList{}, nil
	}
	return PhotoList(out), nil
}
