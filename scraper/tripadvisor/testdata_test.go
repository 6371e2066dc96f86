package tripadvisor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const hotelPage = `<!DOCTYPE html>
<html>
<head><title>Hotel Example</title></head>
<body>
  <h1 id="HEADING" class="QdLfr b d Pn">  The Grand Example Hotel
  </h1>
  <div class="grdwI P">
    <span class="uwJeR P">4.5</span>
    <span class="hkxYU q Wi z Wc">1,234 reviews</span>
  </div>
  <div class="ratings">
    <div class="rating">
      <input id="ReviewRatingFilter_5" type="checkbox" value="5">
      <label for="ReviewRatingFilter_5">Excellent</label>
      <span class="bar"></span>
      <span class="NLuQa">812</span>
    </div>
    <div class="rating">
      <input id="ReviewRatingFilter_4" type="checkbox" value="4">
      <label for="ReviewRatingFilter_4">Very good</label>
      <span class="NLuQa">301</span>
    </div>
    <div class="rating">
      <input id="ReviewRatingFilter_3" type="checkbox" value="3">
      <label for="ReviewRatingFilter_3">Average</label>
      <span class="NLuQa">77</span>
    </div>
    <div class="rating">
      <input id="ReviewRatingFilter_2" type="checkbox" value="2">
      <label for="ReviewRatingFilter_2">Poor</label>
      <span class="NLuQa">29</span>
    </div>
    <div class="rating">
      <input id="ReviewRatingFilter_1" type="checkbox" value="1">
      <label for="ReviewRatingFilter_1">Terrible</label>
      <span class="NLuQa">15</span>
    </div>
  </div>
  <div class="about">
    <span class="S2"><svg aria-label="4.5 of 5 stars" class="JXZuC d H0" viewBox="0 0 128 24"><path d="M 12 0"></path></svg></span>
    <div class="mpDVe Ci b">PRICE RANGE</div>
    <div class="IhqAp Ci">$227 - $387 (Based on Average Rates for a Standard Room)</div>
    <div class="mpDVe Ci b">NUMBER OF ROOMS</div>
    <div class="IhqAp Ci"> 120 </div>
  </div>
</body>
</html>`

const emptyPage = `<html><head></head><body><p>nothing to see here</p></body></html>`

func parse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}
