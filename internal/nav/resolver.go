// Package nav computes sibling navigation within a category's stable order.
package nav

import "github.com/goliatone/go-docrepo/pkg/interfaces"

// Siblings locates slug in the ordered category listing and returns the
// neighbouring slugs. Both are nil at the respective boundary and when the
// slug is not part of the ordering. Adjacent pairs are symmetric by
// construction: if B.prev is A then A.next is B.
func Siblings(slug string, ordered []interfaces.DocumentSummary) (prev, next *string) {
	for i := range ordered {
		if ordered[i].Slug != slug {
			continue
		}
		if i > 0 {
			prev = &ordered[i-1].Slug
		}
		if i < len(ordered)-1 {
			next = &ordered[i+1].Slug
		}
		return prev, next
	}
	return nil, nil
}
