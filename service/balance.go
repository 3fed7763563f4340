package service

// EndBalance projects the balance left after n periods where each period
// first subtracts payment and then applies rate percent interest to what
// remains. The result may be negative.
func EndBalance(principal, rate float64, n int, payment float64) float64 {
	balance := principal
	for i := 0; i < n; i++ {
		balance = (balance - payment) * (1 + rate/100)
	}
	return balance
}
