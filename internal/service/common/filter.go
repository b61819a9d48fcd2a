package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// MatchesFilter はワイルドカードパターンマッチングを行う
// ワイルドカード（*）を含む場合はglob形式でマッチング、
// 含まない場合は部分一致で判定する
func MatchesFilter(name, pattern string) bool {
	if strings.Contains(pattern, "*") {
		g, err := glob.Compile(pattern)
		if err != nil {
			return false
		}
		return g.Match(name)
	}
	// ワイルドカードなしの場合は部分一致
	return strings.Contains(name, pattern)
}

// RemoveDuplicates は文字列スライスから重複を除去する
func RemoveDuplicates(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
