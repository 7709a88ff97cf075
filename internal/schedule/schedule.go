// Package schedule holds the book-club reading schedule: a flat,
// ordered list of dates, each paired with the volume numbers discussed
// on that date.
package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a single schedule row: one date and the volumes read for it.
type Entry struct {
	Date    string `json:"date" yaml:"date"`
	Volumes []int  `json:"volumes" yaml:"volumes"`
}

// Schedule is the ordered list of entries as they appear on the poster,
// filled left-to-right, top-to-bottom.
type Schedule []Entry

// FormatVolumes renders volume numbers as poster label text:
// "Volume 1", "Volumes 1 & 2", "Volumes 1, 2 & 3".
func FormatVolumes(vols []int) string {
	switch len(vols) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Volume %d", vols[0])
	case 2:
		return fmt.Sprintf("Volumes %d & %d", vols[0], vols[1])
	}

	parts := make([]string, len(vols)-1)
	for i, v := range vols[:len(vols)-1] {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("Volumes %s & %d", strings.Join(parts, ", "), vols[len(vols)-1])
}

// UniqueVolumes returns every distinct volume number referenced by the
// schedule, in ascending order.
func (s Schedule) UniqueVolumes() []int {
	seen := make(map[int]bool)
	for _, e := range s {
		for _, v := range e.Volumes {
			seen[v] = true
		}
	}

	vols := make([]int, 0, len(seen))
	for v := range seen {
		vols = append(vols, v)
	}
	sort.Ints(vols)
	return vols
}

// Rows returns the number of content rows needed to lay out the
// schedule at the given column count.
func (s Schedule) Rows(cols int) int {
	if cols <= 0 {
		return 0
	}
	return (len(s) + cols - 1) / cols
}
