// Package vehicle is the motion simulation: one vehicle, discrete driver inputs,
// per-frame Euler integration of speed, distance and elapsed time.
//
// Frame order inside Advance is fixed: held-input decay, braking, cruise
// convergence, gear propulsion or drag, over-speed penalty, clamp and integrate.
// Each step reads the speed written by the previous one.
//
// The model is single-writer: input methods and Advance are called from the
// frame loop goroutine only, so no locking is done here.
package vehicle
