package skills

import "strings"

// fuzzyMinLen gates substring matching: tokens this short ("c", "go", "r")
// would otherwise match inside unrelated tokens ("css", "django").
const fuzzyMinLen = 2

// MatchResult partitions a required-skill list against what the user has.
// Common and Missing together cover every required skill exactly once, in
// the required list's original order.
type MatchResult struct {
	Common  []string
	Missing []string
}

// Match compares a required-skill list (market skills for a role, or skills
// extracted from a job description) against the user's skills. A required
// skill counts as covered on an exact normalized-token match, or on a
// substring containment in either direction when both tokens are longer
// than fuzzyMinLen. The first fuzzy hit wins; candidates are not ranked.
func Match(required []string, userSkills []string) MatchResult {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		if norm := Normalize(s); norm != "" {
			userSet[norm] = struct{}{}
		}
	}

	res := MatchResult{
		Common:  []string{},
		Missing: []string{},
	}
	for _, req := range required {
		if covered(Normalize(req), userSet) {
			res.Common = append(res.Common, req)
		} else {
			res.Missing = append(res.Missing, req)
		}
	}
	return res
}

func covered(reqNorm string, userSet map[string]struct{}) bool {
	if reqNorm == "" {
		return false
	}
	if _, ok := userSet[reqNorm]; ok {
		return true
	}
	if len(reqNorm) <= fuzzyMinLen {
		return false
	}
	for userNorm := range userSet {
		if len(userNorm) <= fuzzyMinLen {
			continue
		}
		if strings.Contains(reqNorm, userNorm) || strings.Contains(userNorm, reqNorm) {
			return true
		}
	}
	return false
}
