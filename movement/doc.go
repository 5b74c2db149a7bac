// Package movement holds the per-tick character controller stages. Each
// stage is a plain function over a Step, so the pipeline can be exercised
// without a physics engine. Run executes them in their fixed order:
// grounding, horizontal movement, jump charge, elasticity.
package movement
