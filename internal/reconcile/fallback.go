package reconcile

import model "carpet-auction-house/internal/models"

// SampleSeller is the fixed seller dataset shown in demo mode and after a failed pass.
// A fresh slice is returned on every call.
func SampleSeller() []model.SellerSummary {
	winner := "0xABC...DEF"
	return []model.SellerSummary{
		{ID: 1, Title: "Kashmiri Silk Carpet", Status: model.StatusActive, HighestBid: "1.5 ETH", Winner: nil},
		{ID: 4, Title: "Hand-Knotted Rug", Status: model.StatusEnded, HighestBid: "2.1 ETH", Winner: &winner},
	}
}

// SampleBuyer is the fixed buyer dataset paired with SampleSeller
func SampleBuyer() []model.BuyerSummary {
	return []model.BuyerSummary{
		{ID: 2, Title: "Antique Persian Rug", MyHighestBid: "2.3 ETH", Outcome: model.OutcomeWon, Won: true},
		{ID: 3, Title: "Modern Geometric Carpet", MyHighestBid: "0.7 ETH", Outcome: model.OutcomeLost, Won: false},
	}
}

func sampleDashboard(source model.DataSource) model.Dashboard {
	return model.Dashboard{Seller: SampleSeller(), Buyer: SampleBuyer(), Source: source}
}
