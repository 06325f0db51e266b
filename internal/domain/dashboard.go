package domain

// Dashboard summarises a seller's store. Orders and earnings are not tracked
// yet and stay at zero.
type Dashboard struct {
	TotalProducts int64    `json:"totalProducts"`
	TotalOrders   int64    `json:"totalOrders"`
	TotalEarnings float64  `json:"totalEarnings"`
	Ratings       []Rating `json:"ratings"`
}

func EmptyDashboard() Dashboard {
	return Dashboard{Ratings: []Rating{}}
}
