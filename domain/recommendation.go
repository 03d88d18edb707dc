package domain

// UserQuery is the per-request input of the recommendation pipeline.
type UserQuery struct {
	Budget   float64
	RAM      float64
	Usage    string
	Strategy string // empty means the configured default
}

// Offer is the cheapest retailer for a phone.
type Offer struct {
	Retailer string  `json:"retailer"`
	Price    float64 `json:"price"`
	Link     string  `json:"link"`
}

type ScoredResult struct {
	Model        string            `json:"model"`
	Price        float64           `json:"price"`
	RAM          float64           `json:"ram"`
	Storage      float64           `json:"storage"`
	Rating       float64           `json:"rating"`
	Usage        string            `json:"usage"`
	Score        float64           `json:"score"`
	Strategy     string            `json:"strategy"`
	BestRetailer string            `json:"best_store"`
	BestPrice    float64           `json:"best_price"`
	Links        map[string]string `json:"links"`
	Reason       string            `json:"reason"`
}

// DebugRecommendation exposes the vectors behind a recommendation.
type DebugRecommendation struct {
	Strategy     string        `json:"strategy"`
	UsageCode    int           `json:"usage_code"`
	QueryRaw     []float64     `json:"query_raw"`
	QueryScaled  []float64     `json:"query_scaled"`
	FeatureNames []string      `json:"feature_names"`
	Results      []DebugResult `json:"results"`
	Matched      int           `json:"matched"`
	CatalogSize  int           `json:"catalog_size"`
}

type DebugResult struct {
	ScoredResult
	Scaled []float64 `json:"scaled"`
}

type ComparedPhone struct {
	Phone
	BestRetailer string  `json:"best_store"`
	BestPrice    float64 `json:"best_price"`
	Score        float64 `json:"score"`
}

// Comparison ranks the selected phones by score, winner first.
type Comparison struct {
	Ranked    []ComparedPhone `json:"mobiles"`
	Winner    ComparedPhone   `json:"recommended"`
	TieBroken bool            `json:"tie_broken"`
}
