package arrangement

// transitionCost is the weight of the edge from → to; from is nil for the
// virtual start vertex.
//
// Reaching a rest costs nothing. Reaching a note costs
//
//	AvgFretDiffWeight·|avg(to) − avg(from)| + SpanWeight·span(to) + AvgFretWeight·avg(to)
//
// rounded down, where the difference term is 0 unless both averages are
// defined and an undefined avg(to) counts as 0.
//
// Averages are fret sum over fret count, so the whole expression is computed
// over the common denominator count(from)·count(to) in integers and floored
// once. The result is exact and identical on every platform.
func transitionCost(from, to *node) int64 {
	if to.rest {
		return 0
	}

	span := int64(to.combo.Span()) * SpanWeight
	sv, nv := to.combo.fretSum, to.combo.fretCount
	if nv == 0 {
		return span
	}

	// su/nu defaults to 0/1: no movement term, denominator nv.
	var su, nu int64 = 0, 1
	moved := false
	if from != nil && !from.rest && from.combo.fretCount > 0 {
		su, nu = from.combo.fretSum, from.combo.fretCount
		moved = true
	}

	den := nu * nv
	num := span*den + AvgFretWeight*sv*nu
	if moved {
		diff := sv*nu - su*nv
		if diff < 0 {
			diff = -diff
		}
		num += AvgFretDiffWeight * diff
	}

	return num / den
}
