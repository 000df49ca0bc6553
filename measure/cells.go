package measure

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/tokenfield/internal/grapheme"
)

// Cells measures text in terminal cells, one grapheme cluster at a time.
type Cells struct{}

func (Cells) Measure(text string) int {
	if text == "" {
		return 0
	}
	w := 0
	for _, c := range grapheme.Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// ClusterWidth returns the cell width of a single grapheme cluster.
//
// go-runewidth reports 0 for some clusters that terminals still draw
// (emoji modifiers, ZWJ sequences); uniseg's width is used as a floor then.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}
