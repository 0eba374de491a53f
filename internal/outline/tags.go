package outline

import (
	"fmt"
	"slices"
	"strings"
)

// TagOrder decides the order tags are appended to outline text.
type TagOrder string

const (
	TagOrderInsertion TagOrder = "insertion"
	TagOrderSorted    TagOrder = "sorted"
)

func ParseTagOrder(s string) (TagOrder, error) {
	switch TagOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", TagOrderInsertion:
		return TagOrderInsertion, nil
	case TagOrderSorted:
		return TagOrderSorted, nil
	default:
		return "", fmt.Errorf("outline: unknown tag order %q", s)
	}
}

func (o TagOrder) apply(tags []string) []string {
	if o != TagOrderSorted {
		return tags
	}
	return slices.Sorted(slices.Values(tags))
}
