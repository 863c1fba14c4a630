package marina

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// slipVessel is a helper for tests to create a slip vessel.
func slipVessel(name string, feet float64, number int, fees float64) Vessel {
	return Vessel{Name: name, Length: L(feet), Location: SlipLocation{Number: number}, Fees: USD(fees)}
}
