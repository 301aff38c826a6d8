// Package label measures and fits node labels into terminal cells.
package label

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster with its terminal cell width.
type Cluster struct {
	Text  string
	Width int
}

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	for g.Next() {
		s := g.Str()
		out = append(out, Cluster{Text: s, Width: clusterWidth(s)})
	}
	return out
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += c.Width
	}
	return w
}

// Fit truncates text to at most maxCells cells without splitting a grapheme
// cluster. When text is cut, the last cell becomes an ellipsis.
func Fit(text string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	if Width(text) <= maxCells {
		return text
	}

	budget := maxCells - 1
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		if used+c.Width > budget {
			break
		}
		sb.WriteString(c.Text)
		used += c.Width
	}
	sb.WriteString("…")
	return sb.String()
}

func clusterWidth(s string) int {
	w := runewidth.StringWidth(s)
	if w <= 0 {
		w = uniseg.StringWidth(s)
	}
	if w < 0 {
		w = 0
	}
	return w
}
