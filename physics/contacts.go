package physics

import "github.com/jakecoffman/cp"

// ContactNormals returns the normal of every contact the body had during the
// last space step, pointing from the other shape toward the body. A body
// resting on flat ground reports (0, 1).
func ContactNormals(body *cp.Body) []cp.Vector {
	if body == nil {
		return nil
	}
	var normals []cp.Vector
	body.EachArbiter(func(arb *cp.Arbiter) {
		if arb.Count() == 0 {
			return
		}
		normals = append(normals, arb.Normal().Neg())
	})
	return normals
}
