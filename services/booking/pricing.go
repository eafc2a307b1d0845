package booking

import "math"

// CalculateTotalPrice multiplies the unit fare by the ticket count. ok is false
// for negative inputs or when the product does not fit in an int32, the width
// of the SQL total_price column.
func CalculateTotalPrice(unitPrice, numTickets int) (total int, ok bool) {
	if unitPrice < 0 || numTickets < 0 {
		return 0, false
	}
	if numTickets != 0 && unitPrice > math.MaxInt32/numTickets {
		return 0, false
	}
	return unitPrice * numTickets, true
}

// CalculateLoyaltyPoints awards 10% of the total, floored.
func CalculateLoyaltyPoints(totalPrice int) int {
	if totalPrice <= 0 {
		return 0
	}
	return totalPrice / 10
}
