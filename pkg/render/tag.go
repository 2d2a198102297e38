package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a pagination tag.
type Kind int

const (
	KindFirst Kind = iota
	KindPrev
	KindPage
	KindGap
	KindNext
	KindLast
)

var kindNames = [...]string{
	KindFirst: "first_page",
	KindPrev:  "prev_page",
	KindPage:  "page",
	KindGap:   "gap",
	KindNext:  "next_page",
	KindLast:  "last_page",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("render: unknown tag kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("render: unknown tag kind %q", b)
}

// Tag is one element of a rendered paginator. Page is the target page number;
// it is zero for gaps.
type Tag struct {
	Kind    Kind `json:"kind"`
	Page    int  `json:"page,omitempty"`
	Current bool `json:"current,omitempty"`
}

// Text formats tags as a single plain-text line:
//
//	« ‹ 1 2 … 10 … 48 49 [50] 51 52 … › »
func Text(tags []Tag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		switch t.Kind {
		case KindFirst:
			parts = append(parts, "«")
		case KindPrev:
			parts = append(parts, "‹")
		case KindGap:
			parts = append(parts, "…")
		case KindNext:
			parts = append(parts, "›")
		case KindLast:
			parts = append(parts, "»")
		case KindPage:
			if t.Current {
				parts = append(parts, "["+strconv.Itoa(t.Page)+"]")
			} else {
				parts = append(parts, strconv.Itoa(t.Page))
			}
		}
	}
	return strings.Join(parts, " ")
}
