package domain

// Retailer names, in the order the dataset lists them.
const (
	RetailerAmazon   = "Amazon"
	RetailerFlipkart = "Flipkart"
	RetailerCroma    = "Croma"
)

// Retailers is the fixed retailer set every catalog row carries.
var Retailers = []string{RetailerAmazon, RetailerFlipkart, RetailerCroma}

type RetailerOffer struct {
	Price float64 `json:"price"`
	Link  string  `json:"link"`
}

// Phone is one immutable catalog row. Model is the unique key.
type Phone struct {
	Model     string                   `json:"model"`
	Price     float64                  `json:"price"`
	RAM       float64                  `json:"ram"`
	Storage   float64                  `json:"storage"`
	Rating    float64                  `json:"rating"`
	Usage     string                   `json:"usage"`
	Retailers map[string]RetailerOffer `json:"retailers"`
}

// Links returns retailer name -> purchase link.
func (p Phone) Links() map[string]string {
	links := make(map[string]string, len(p.Retailers))
	for name, offer := range p.Retailers {
		links[name] = offer.Link
	}
	return links
}
