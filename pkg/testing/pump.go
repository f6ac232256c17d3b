package testing

import "time"

// Pump advances clk by step until total has elapsed, calling update after
// every step. The final step is shortened so exactly total elapses.
func Pump(clk *FakeClock, total, step time.Duration, update func()) {
	if step <= 0 {
		step = total
	}
	for elapsed := time.Duration(0); elapsed < total; {
		d := step
		if elapsed+d > total {
			d = total - elapsed
		}
		clk.Advance(d)
		elapsed += d
		update()
	}
}

// PumpSchedule advances clk by each delay in turn, calling update after
// every advance. Use it to model irregular polling.
func PumpSchedule(clk *FakeClock, delays []time.Duration, update func()) {
	for _, d := range delays {
		clk.Advance(d)
		update()
	}
}
