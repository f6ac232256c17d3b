// Package testing provides helpers for deterministic tests of code built on
// ramps: a controllable [FakeClock] and pumps that advance it while calling
// an update function, the way a control loop would.
//
//	clk := testing.NewFakeClock()
//	r := ramp.NewWithClock(clk)
//	r.Go(100, time.Second, ramp.OnceForward, easing.Linear)
//	testing.Pump(clk, 500*time.Millisecond, 20*time.Millisecond, func() { r.Update() })
//	// r.Value() is now 50
package testing
