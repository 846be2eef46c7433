package ncpqm

// cross reports whether edges {u1,v1} and {u2,v2} cross on the circle,
// per: with u1<v1 and u2<v2, they cross iff
// (u1-u2)(u1-v2)(v1-u2)(v1-v2) < 0. Loops never cross; shared endpoints
// never cross; identical edges never cross — all three fall out of the
// sign-product test automatically (a shared or repeated endpoint drives
// one factor to zero), but are short-circuited here for clarity and to
// avoid relying on that cancellation.
func cross(e1, e2 edgeKey) bool {
	if e1 == e2 {
		return false
	}
	if e1.u == e1.v || e2.u == e2.v {
		return false
	}
	if e1.u == e2.u || e1.u == e2.v || e1.v == e2.u || e1.v == e2.v {
		return false
	}

	u1, v1 := e1.u, e1.v
	u2, v2 := e2.u, e2.v
	product := (u1 - u2) * (u1 - v2) * (v1 - u2) * (v1 - v2)
	return product < 0
}
