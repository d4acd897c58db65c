package generator

// ProductInput is the root of every downstream derivation, collected at the
// first wizard step.
type ProductInput struct {
	ProductName  string `json:"productName"`
	TargetMarket string `json:"targetMarket"`
	Benefits     string `json:"benefits"`
}

type Problem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    int    `json:"severity"` // 1..5
}

type PatternInterrupt struct {
	MainMessage          string   `json:"mainMessage"`
	OldWayProblems       []string `json:"oldWayProblems"`
	NewReality           string   `json:"newReality"`
	TransitionToSolution string   `json:"transitionToSolution"`
}

type LandingPage struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	NewWay      string   `json:"newWay"`
	HowItWorks  []string `json:"howItWorks"`
	SocialProof string   `json:"socialProof"`
	CTA         string   `json:"cta"`
}

type MetaAd struct {
	Type        string `json:"type"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

type GoogleAd struct {
	Type        string `json:"type"`
	Headline1   string `json:"headline1"`
	Headline2   string `json:"headline2"`
	Description string `json:"description"`
}

type AdBundle struct {
	MetaAds   []MetaAd   `json:"metaAds"`
	GoogleAds []GoogleAd `json:"googleAds"`
}

// PreviewBundle is everything the preview step shows, cached as one draft key.
type PreviewBundle struct {
	LandingPage LandingPage `json:"landingPage"`
	MetaAds     []MetaAd    `json:"metaAds"`
	GoogleAds   []GoogleAd  `json:"googleAds"`
	HTMLCode    string      `json:"htmlCode"`
}
