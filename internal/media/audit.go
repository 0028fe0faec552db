package media

import "github.com/vmunix/macflix/internal/catalog"

// Problem is a local locator that cannot be served.
type Problem struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
	Season    int    `json:"season,omitempty"`
	Episode   int    `json:"episode,omitempty"`
	Field     string `json:"field"`
	Locator   string `json:"locator"`
	Issue     string `json:"issue"`
}

// Report summarizes an Audit.
type Report struct {
	Records  int       `json:"records"`
	Checked  int       `json:"checked"`
	Passed   int       `json:"passed"`
	Remote   int       `json:"remote"`
	Problems []Problem `json:"problems"`
}

// Audit runs check against every local video and download locator in cat,
// episodes included. Remote locators are counted but never contacted.
func Audit(cat *catalog.Catalog, check func(locator string) error) Report {
	rep := Report{Records: cat.Len(), Problems: []Problem{}}

	visit := func(rec *catalog.Record, season, episode int, field, locator string) {
		if locator == "" {
			return
		}
		if Classify(locator) == Remote {
			rep.Remote++
			return
		}
		rep.Checked++
		if err := check(locator); err != nil {
			rep.Problems = append(rep.Problems, Problem{
				ContentID: rec.ID,
				Title:     rec.Title,
				Season:    season,
				Episode:   episode,
				Field:     field,
				Locator:   locator,
				Issue:     err.Error(),
			})
			return
		}
		rep.Passed++
	}

	for _, rec := range cat.All() {
		visit(rec, 0, 0, "video_url", rec.VideoURL)
		visit(rec, 0, 0, "download_url", rec.DownloadURL)
		for _, season := range rec.Seasons {
			for _, ep := range season.Episodes {
				visit(rec, season.Number, ep.Number, "video_url", ep.VideoURL)
			}
		}
	}
	return rep
}
