package service

import "strings"

// maxCompareLen caps pathological input; names in this domain are short and
// anything beyond this is truncated before comparison.
const maxCompareLen = 64

// EditDistance is the classic Levenshtein distance (insert/delete/substitute,
// unit cost) over trimmed, case-folded strings.
func EditDistance(a, b string) int {
	ra := capRunes(strings.ToLower(strings.TrimSpace(a)))
	rb := capRunes(strings.ToLower(strings.TrimSpace(b)))
	al, bl := len(ra), len(rb)

	dp := make([][]int, al+1)
	for i := 0; i <= al; i++ {
		dp[i] = make([]int, bl+1)
	}
	for i := 0; i <= al; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= bl; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}
	return dp[al][bl]
}

func capRunes(s string) []rune {
	r := []rune(s)
	if len(r) > maxCompareLen {
		r = r[:maxCompareLen]
	}
	return r
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func min3(a, b, c int) int { return min(min(a, b), c) }
