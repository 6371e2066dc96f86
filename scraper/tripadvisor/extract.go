package tripadvisor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Heading returns the hotel name from the page's top-level heading.
func Heading(doc *goquery.Document) Field {
	return guard(func() Field {
		return trimmedText(doc.Find(HeadingSelector).First())
	})
}

// ReviewCount returns the first token of the total reviews label, e.g. "1,234"
// from "1,234 reviews".
func ReviewCount(doc *goquery.Document) Field {
	return guard(func() Field {
		f := trimmedText(doc.Find(ReviewCountSelector).First())
		if !f.Found {
			return NotFound
		}
		return found(firstToken(f.Value))
	})
}

// AverageScore returns the aggregate review score.
func AverageScore(doc *goquery.Document) Field {
	return guard(func() Field {
		return trimmedText(doc.Find(AverageScoreSelector).First())
	})
}

// RatingBucketCount returns the count shown next to the given rating filter.
func RatingBucketCount(doc *goquery.Document, bucket Bucket) Field {
	return guard(func() Field {
		input := doc.Find("input#" + string(bucket)).First()
		if input.Length() == 0 {
			return NotFound
		}
		return trimmedText(input.NextAllFiltered(BucketCountSelector).First())
	})
}

// StarRating returns the leading number of the star rating's aria-label,
// e.g. "4.5" from "4.5 of 5 stars".
func StarRating(doc *goquery.Document) Field {
	return guard(func() Field {
		svg := doc.Find(StarRatingSelector).First().Find("svg").First()
		label, ok := svg.Attr("aria-label")
		if !ok {
			return NotFound
		}
		return found(firstToken(strings.TrimSpace(label)))
	})
}

// RoomCount returns the text of the element following the rooms label.
func RoomCount(doc *goquery.Document) Field {
	return guard(func() Field {
		return labelledText(doc, RoomsLabel)
	})
}

// Price returns the digits of the index-th token of the price range text.
// Index 0 is the low end, 2 the high end; 1 is the separator.
func Price(doc *goquery.Document, index int) Field {
	return guard(func() Field {
		f := labelledText(doc, PriceRangeLabel)
		if !f.Found {
			return NotFound
		}
		tokens := strings.Fields(f.Value)
		if index < 0 || index >= len(tokens) {
			return NotFound
		}
		return found(digitsOnly(tokens[index]))
	})
}

func trimmedText(sel *goquery.Selection) Field {
	if sel.Length() == 0 {
		return NotFound
	}
	return found(strings.TrimSpace(sel.Text()))
}

// labelledText finds the text node equal to label and returns the trimmed
// text of the next element after it in document order.
func labelledText(doc *goquery.Document, label string) Field {
	text := findTextNode(doc.Selection.Nodes, label)
	if text == nil {
		return NotFound
	}
	next := nextElement(text)
	if next == nil {
		return NotFound
	}
	return trimmedText(goquery.NewDocumentFromNode(next).Selection)
}

func findTextNode(roots []*html.Node, label string) *html.Node {
	for _, root := range roots {
		if n := findText(root, label); n != nil {
			return n
		}
	}
	return nil
}

func findText(n *html.Node, label string) *html.Node {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) == label {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findText(c, label); m != nil {
			return m
		}
	}
	return nil
}

// nextElement walks forward in document order from n, skipping n's own
// subtree, whitespace-only text and comments.
func nextElement(n *html.Node) *html.Node {
	cur := n
	for {
		for cur != nil && cur.NextSibling == nil {
			cur = cur.Parent
		}
		if cur == nil {
			return nil
		}
		cur = cur.NextSibling
		switch {
		case cur.Type == html.ElementNode:
			return cur
		case cur.Type == html.TextNode && strings.TrimSpace(cur.Data) != "":
			return cur
		}
	}
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
