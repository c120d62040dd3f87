package jsondiff

import "sort"

// diffValues walks two decoded JSON values and collects every difference.
func diffValues(lhs, rhs any, cfg *Config) []Difference {
	var acc []Difference
	if cfg.compareMode == Inclusive {
		diffInclusive(&acc, Path{}, lhs, rhs, cfg)
	} else {
		diffStrict(&acc, Path{}, lhs, rhs, cfg)
	}

	return acc
}

// diffInclusive walks the expected value: every atom of expected must exist
// and match inside actual, while extra data in actual is ignored.
func diffInclusive(acc *[]Difference, path Path, actual, expected any, cfg *Config) {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			addMismatch(acc, path, actual, expected, cfg)

			return
		}
		for _, key := range sortedKeys(exp) {
			child := path.extend(FieldKey(key))
			av, present := act[key]
			if !present {
				addMissing(acc, child, MissingFromLhs, nil, exp[key], cfg)

				continue
			}
			diffInclusive(acc, child, av, exp[key], cfg)
		}
	case []any:
		act, ok := actual.([]any)
		if !ok {
			addMismatch(acc, path, actual, expected, cfg)

			return
		}
		if cfg.arraySortingMode == IgnoreOrder {
			diffUnordered(acc, path, act, exp, cfg)

			return
		}
		for i, ev := range exp {
			child := path.extend(IndexKey(i))
			if i >= len(act) {
				addMissing(acc, child, MissingFromLhs, nil, ev, cfg)

				continue
			}
			diffInclusive(acc, child, act[i], ev, cfg)
		}
	default:
		if !cfg.atomEq(actual, expected) {
			addMismatch(acc, path, actual, expected, cfg)
		}
	}
}

// diffStrict walks both sides and reports data present on only one of them.
func diffStrict(acc *[]Difference, path Path, lhs, rhs any, cfg *Config) {
	lObj, lIsObj := lhs.(map[string]any)
	rObj, rIsObj := rhs.(map[string]any)
	lArr, lIsArr := lhs.([]any)
	rArr, rIsArr := rhs.([]any)

	switch {
	case lIsObj && rIsObj:
		for _, key := range unionKeys(lObj, rObj) {
			child := path.extend(FieldKey(key))
			lv, inLhs := lObj[key]
			rv, inRhs := rObj[key]
			switch {
			case inLhs && inRhs:
				diffStrict(acc, child, lv, rv, cfg)
			case inLhs:
				addMissing(acc, child, MissingFromRhs, lv, nil, cfg)
			default:
				addMissing(acc, child, MissingFromLhs, nil, rv, cfg)
			}
		}
	case lIsArr && rIsArr:
		for i := 0; i < len(lArr) || i < len(rArr); i++ {
			child := path.extend(IndexKey(i))
			switch {
			case i < len(lArr) && i < len(rArr):
				diffStrict(acc, child, lArr[i], rArr[i], cfg)
			case i < len(lArr):
				addMissing(acc, child, MissingFromRhs, lArr[i], nil, cfg)
			default:
				addMissing(acc, child, MissingFromLhs, nil, rArr[i], cfg)
			}
		}
	default:
		if !cfg.atomEq(lhs, rhs) {
			addMismatch(acc, path, lhs, rhs, cfg)
		}
	}
}

// diffUnordered matches every expected element against a distinct actual
// element regardless of position. Elements may repeat on both sides, so the
// pairing is a maximum bipartite matching rather than a first-fit scan:
// a later expected element may displace an earlier pairing as long as the
// earlier element can be re-seated elsewhere.
func diffUnordered(acc *[]Difference, path Path, actual, expected []any, cfg *Config) {
	m := &unorderedMatcher{
		actual:      actual,
		expected:    expected,
		cfg:         cfg,
		compat:      make(map[[2]int]bool),
		actualOwner: make([]int, len(actual)),
	}
	for j := range m.actualOwner {
		m.actualOwner[j] = -1
	}

	for i, ev := range expected {
		visited := make([]bool, len(actual))
		if !m.assign(i, visited) {
			addMissing(acc, path.extend(IndexKey(i)), MissingFromLhs, nil, ev, cfg)
		}
	}
}

type unorderedMatcher struct {
	actual   []any
	expected []any
	cfg      *Config

	// compat caches pairwise containment checks; matching repeated elements
	// would otherwise re-diff the same pair once per augmenting pass.
	compat map[[2]int]bool
	// actualOwner[j] holds the expected index currently matched to actual[j],
	// or -1.
	actualOwner []int
}

func (m *unorderedMatcher) matches(expIdx, actIdx int) bool {
	key := [2]int{expIdx, actIdx}
	ok, cached := m.compat[key]
	if cached {
		return ok
	}

	var scratch []Difference
	diffInclusive(&scratch, Path{}, m.actual[actIdx], m.expected[expIdx], m.cfg)
	ok = len(scratch) == 0
	m.compat[key] = ok

	return ok
}

// assign finds an actual element for expected[expIdx], recursively re-seating
// earlier pairings when needed (Kuhn's augmenting path).
func (m *unorderedMatcher) assign(expIdx int, visited []bool) bool {
	for j := range m.actual {
		if visited[j] || !m.matches(expIdx, j) {
			continue
		}
		visited[j] = true
		if m.actualOwner[j] == -1 || m.assign(m.actualOwner[j], visited) {
			m.actualOwner[j] = expIdx

			return true
		}
	}

	return false
}

func addMismatch(acc *[]Difference, path Path, lhs, rhs any, cfg *Config) {
	*acc = append(*acc, Difference{
		Path: path,
		Lhs:  lhs,
		Rhs:  rhs,
		Kind: AtomsNotEqual,
		mode: cfg.compareMode,
	})
}

func addMissing(acc *[]Difference, path Path, kind DifferenceKind, lhs, rhs any, cfg *Config) {
	*acc = append(*acc, Difference{
		Path: path,
		Lhs:  lhs,
		Rhs:  rhs,
		Kind: kind,
		mode: cfg.compareMode,
	})
}

func unionKeys(lhs, rhs map[string]any) []string {
	keys := make([]string, 0, len(lhs)+len(rhs))
	for k := range lhs {
		keys = append(keys, k)
	}
	for k := range rhs {
		_, shared := lhs[k]
		if !shared {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}
