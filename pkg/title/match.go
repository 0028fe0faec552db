package title

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// MinScore is the lowest similarity Rank reports.
const MinScore = 0.70

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Score returns the similarity of query and candidate in [0, 1].
// Jaro-Winkler on cleaned titles, favouring shared prefixes. A cleaned
// query contained in the candidate as whole words scores at least 0.9 so
// "matrix" finds "The Matrix Reloaded".
func Score(query, candidate string) float64 {
	q, c := Clean(query), Clean(candidate)
	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1
	}

	score := float64(edlib.JaroWinklerSimilarity(q, c))
	if strings.Contains(" "+c+" ", " "+q+" ") {
		score = max(score, 0.9)
	}
	return adjustForNumbers(score, numberRegex.FindAllString(q, -1), numberRegex.FindAllString(c, -1))
}

// Hit is one ranked candidate.
type Hit struct {
	Index int // position in the candidate slice
	Score float64
}

// Rank scores every candidate against query and returns those at or above
// MinScore, best first. Equal scores keep candidate order.
func Rank(query string, candidates []string) []Hit {
	hits := make([]Hit, 0, len(candidates))
	for i, c := range candidates {
		if s := Score(query, c); s >= MinScore {
			hits = append(hits, Hit{Index: i, Score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits
}

// adjustForNumbers rewards a shared sequence number ("Toy Story 2") and
// penalizes a missing or different one.
func adjustForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}
	for _, q := range queryNums {
		for _, c := range candidateNums {
			if q == c {
				return min(score*1.05, 1.0)
			}
		}
	}
	return score * 0.90
}
