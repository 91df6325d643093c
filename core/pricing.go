package core

// Weekly content tiers map directly to RON amounts. An out-of-range tier
// prices at 0: the tier simply was not purchased, it is not an error.
var videoPricing = map[int]int{
	1: 1500,
	2: 2200,
	3: 3000,
	4: 4000,
	5: 4600,
	6: 5000,
	7: 5400,
}

var postPricing = map[int]int{
	1: 500,
	2: 900,
	3: 1200,
	4: 1400,
	5: 1600,
	6: 1800,
	7: 2000,
}

const (
	adManagementFee = 600
	freeAdThreshold = 4000
)

// PriceBreakdown is the server-computed quote. Amounts are always derived
// from the tier selectors here, never taken from the client.
type PriceBreakdown struct {
	VideoCost  int `json:"videoCost"`
	PostCost   int `json:"postCost"`
	BasePrice  int `json:"basePrice"`
	AdCost     int `json:"adCost"`
	TotalPrice int `json:"totalPrice"`
}

// CalculatePrice computes a quote from weekly video/post tiers (1..7) and
// the ad-management flag. Ad management is bundled free once the base spend
// reaches freeAdThreshold.
func CalculatePrice(videosPerWeek, postsPerWeek int, includeAdManagement bool) PriceBreakdown {
	videoCost := videoPricing[videosPerWeek]
	postCost := postPricing[postsPerWeek]
	basePrice := videoCost + postCost

	adCost := 0
	if includeAdManagement && basePrice < freeAdThreshold {
		adCost = adManagementFee
	}

	return PriceBreakdown{
		VideoCost:  videoCost,
		PostCost:   postCost,
		BasePrice:  basePrice,
		AdCost:     adCost,
		TotalPrice: basePrice + adCost,
	}
}
