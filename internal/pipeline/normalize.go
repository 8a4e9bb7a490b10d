package pipeline

import (
	"marketscan/internal"
	"marketscan/internal/util"
)

// NormalizeCandidates turns raw recognizer output into ordered candidates.
// Noise tokens (stack counts, stray characters) are dropped; duplicates
// survive as distinct candidates in their original positions.
func NormalizeCandidates(raw []string) []internal.ItemCandidate {
	out := make([]internal.ItemCandidate, 0, len(raw))
	for i, text := range raw {
		name := util.CleanItemName(text)
		if util.IsNoiseToken(name) {
			continue
		}
		out = append(out, internal.ItemCandidate{
			SourceIndex: i,
			RawText:     text,
			Name:        name,
		})
	}
	return out
}
