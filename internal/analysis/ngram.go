package analysis

import (
	"sort"

	"github.com/SeamusWaldron/slicecube"
)

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// NGram is a move sequence that occurs more than once.
type NGram struct {
	N           int               `json:"n"`
	Sequence    string            `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence records where an n-gram was found.
type NGramOccurrence struct {
	SessionID  string `json:"session_id,omitempty"`
	StartIndex int    `json:"start_index"`
	TsMs       int64  `json:"ts_ms"`
}

// NGramReport holds the most frequent n-grams, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// rollingHash is a Rabin-Karp hash over a fixed-size token window.
type rollingHash struct {
	hash   uint64
	pow    uint64 // base^(n-1), weight of the oldest token
	window []uint8
	n      int
}

const hashBase = 31

func newRollingHash(n int) *rollingHash {
	rh := &rollingHash{n: n, pow: 1, window: make([]uint8, 0, n)}
	for i := 0; i < n-1; i++ {
		rh.pow *= hashBase
	}
	return rh
}

// push appends a token, dropping the oldest once the window is full.
func (rh *rollingHash) push(token uint8) {
	if len(rh.window) == rh.n {
		rh.hash -= uint64(rh.window[0]) * rh.pow
		copy(rh.window, rh.window[1:])
		rh.window = rh.window[:rh.n-1]
	}
	rh.window = append(rh.window, token)
	rh.hash = rh.hash*hashBase + uint64(token)
}

func (rh *rollingHash) full() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	first       int
	occurrences []NGramOccurrence
}

// MineNGrams returns, for each n in [minN, maxN], the topK sequences of n
// moves that occur at least twice, most frequent first. Ties keep the order
// of first appearance.
func MineNGrams(moves []slicecube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 || len(moves) < minN {
		return report
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = moveToken(m)
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineN(tokens, moves, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineN(tokens []uint8, moves []slicecube.Move, n, topK int) []NGram {
	buckets := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry

	rh := newRollingHash(n)
	for i, tok := range tokens {
		rh.push(tok)
		if !rh.full() {
			continue
		}
		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start, TsMs: moves[start].Time.UnixMilli()}

		entry := findEntry(buckets[rh.hash], rh.window)
		if entry == nil {
			entry = &ngramEntry{tokens: append([]uint8(nil), rh.window...), first: start}
			buckets[rh.hash] = append(buckets[rh.hash], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if topK > 0 && len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		result[i] = NGram{
			N:           n,
			Sequence:    formatTokens(e.tokens),
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

// findEntry resolves hash collisions by comparing the tokens themselves.
func findEntry(bucket []*ngramEntry, window []uint8) *ngramEntry {
	for _, e := range bucket {
		if string(e.tokens) == string(window) {
			return e
		}
	}
	return nil
}

func formatTokens(tokens []uint8) string {
	moves := make([]slicecube.Move, len(tokens))
	for i, t := range tokens {
		moves[i] = moveFromToken(t)
	}
	return slicecube.FormatMoves(moves)
}

// MineNGramsAcrossSessions merges per-session reports, summing the counts of
// identical sequences and tagging each sample occurrence with its session.
// Sessions are visited in the order given.
func MineNGramsAcrossSessions(sessionIDs []string, reports map[string]*NGramReport, topK int) *NGramReport {
	merged := &NGramReport{TopNGrams: make(map[int][]NGram)}

	byN := make(map[int][]*NGram)
	index := make(map[string]*NGram)
	for _, id := range sessionIDs {
		report, ok := reports[id]
		if !ok {
			continue
		}
		for n, ngrams := range report.TopNGrams {
			for _, ng := range ngrams {
				agg, exists := index[ng.Sequence]
				if !exists {
					agg = &NGram{N: n, Sequence: ng.Sequence, Tokens: ng.Tokens}
					index[ng.Sequence] = agg
					byN[n] = append(byN[n], agg)
				}
				agg.Count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(agg.Occurrences) >= maxOccurrences {
						break
					}
					occ.SessionID = id
					agg.Occurrences = append(agg.Occurrences, occ)
				}
			}
		}
	}

	for n, list := range byN {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Count > list[j].Count
		})
		if topK > 0 && len(list) > topK {
			list = list[:topK]
		}
		out := make([]NGram, len(list))
		for i, ng := range list {
			out[i] = *ng
		}
		merged.TopNGrams[n] = out
	}
	return merged
}
