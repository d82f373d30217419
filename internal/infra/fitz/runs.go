package fitz

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"resume-extractor/internal/domain"
)

// parseRuns reads the positioned HTML MuPDF produces for a page. Every text
// line is a <p style="top:..pt;left:..pt"> element whose spans hold the text.
// Runs are returned in document order, which is MuPDF's reading order.
func parseRuns(markup string) ([]domain.TextRun, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var runs []domain.TextRun
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "p" {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				x, y := position(n)
				runs = append(runs, domain.TextRun{Text: text, X: x, Y: y})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return runs, nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// position returns the left and top offsets, in points, from the style attribute.
func position(n *html.Node) (x, y float64) {
	for _, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		for _, decl := range strings.Split(attr.Val, ";") {
			key, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			switch strings.TrimSpace(key) {
			case "left":
				x = points(val)
			case "top":
				y = points(val)
			}
		}
	}
	return x, y
}

func points(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "pt")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
