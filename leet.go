package passx

import "unicode"

// DefaultLeetTable maps letters to their leetspeak stand-ins. A letter
// may have several alternates, each produces its own variant.
var DefaultLeetTable = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8', '6'},
	'e': {'3'},
	'g': {'9'},
	'i': {'1', '!'},
	'l': {'1'},
	'o': {'0'},
	's': {'5', '$'},
	't': {'7', '+'},
	'z': {'2'},
}

// LeetVariants expands word into all variants obtained by substituting
// up to maxSubs character positions using the given table. The input
// itself is always the first element. Output size is bounded by
// C(n,0)+C(n,1)+...+C(n,maxSubs) position choices (times the alternate
// count per chosen position), never the full 2^n power set.
//
// maxSubs <= 0 is an identity pass-through. If the word has fewer
// substitutable positions than maxSubs all positions are exhausted.
//
// Ordering is fixed: substitution count ascending, position combinations
// in lexicographic index order, alternates in table order.
func LeetVariants(word string, maxSubs int, table map[rune][]rune) []string {
	if maxSubs <= 0 || len(table) == 0 {
		return []string{word}
	}
	runes := []rune(word)
	var positions []int
	for i, r := range runes {
		if len(table[unicode.ToLower(r)]) > 0 {
			positions = append(positions, i)
		}
	}
	variants := []string{word}
	if len(positions) == 0 {
		return variants
	}
	if maxSubs > len(positions) {
		maxSubs = len(positions)
	}
	for k := 1; k <= maxSubs; k++ {
		combo := make([]int, k)
		for i := range combo {
			combo[i] = i
		}
		for {
			variants = append(variants, substitute(runes, positions, combo, table)...)
			if !nextCombination(combo, len(positions)) {
				break
			}
		}
	}
	return variants
}

// substitute applies every alternate product for the chosen position
// combination using an odometer over per-position alternates.
func substitute(runes []rune, positions, combo []int, table map[rune][]rune) []string {
	alternates := make([][]rune, len(combo))
	for i, c := range combo {
		alternates[i] = table[unicode.ToLower(runes[positions[c]])]
	}
	odometer := make([]int, len(combo))
	var out []string
	for {
		variant := make([]rune, len(runes))
		copy(variant, runes)
		for i, c := range combo {
			variant[positions[c]] = alternates[i][odometer[i]]
		}
		out = append(out, string(variant))
		i := len(odometer) - 1
		for i >= 0 {
			odometer[i]++
			if odometer[i] < len(alternates[i]) {
				break
			}
			odometer[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
	}
}

// nextCombination advances combo to the next k-combination of [0,n) in
// lexicographic order, returns false when exhausted.
func nextCombination(combo []int, n int) bool {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}
	return true
}
