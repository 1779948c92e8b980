package warchest

import "github.com/napolitain/solver-pnw/internal/models"

// Balance nets a nation's bank records: deposits to the nation count
// positive, withdrawals negative. Records between third parties are ignored.
func Balance(n *models.Nation) models.Stockpile {
	var net models.Stockpile
	for _, rec := range n.BankRecords {
		sign := 0.0
		switch n.ID {
		case rec.ReceiverID:
			sign = 1
		case rec.SenderID:
			sign = -1
		default:
			continue
		}
		rec.Amounts.Each(func(c models.Commodity, v float64) {
			net.Add(c, sign*v)
		})
	}
	return net
}
