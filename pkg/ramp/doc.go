// Package ramp drives a value from an origin to a target over time, for
// control loops that feed actuators such as PWM outputs or motor drivers.
//
// # Core Components
//
//   - [Ramp]: a polled state machine. Go starts a session, Update advances
//     it from the elapsed time on a [Clock], Value reads the result.
//
//   - [LoopMode]: what happens when a cycle ends. Once modes finish, loop
//     modes restart, ping-pong modes flip direction.
//
//   - [Group]: updates many ramps in one call from a control loop.
//
//   - [Tween]: maps a ramp running from 0 to 1 onto other value types such
//     as colors.
//
// Easing curves live in the easing package.
//
// # Basic Usage
//
//	r := ramp.New()
//	if _, err := r.Go(255, 1500*time.Millisecond, ramp.ForthAndBack, easing.SinusoidalInOut); err != nil {
//	    return err
//	}
//	for range ticker.C {
//	    led.SetDuty(r.Update().Value())
//	}
//
// Nothing here starts goroutines or timers; all progress happens inside
// Update.
package ramp
