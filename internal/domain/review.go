package domain

// ReviewResponse is a business owner's reply to a review. It is only
// present when author, comment, and date are all known.
type ReviewResponse struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Review is a customer review attached to a business.
// BusinessID must reference an existing Business. Rating is an integer 1-5.
type Review struct {
	ID           string          `json:"id"`
	BusinessID   string          `json:"businessId"`
	Author       string          `json:"author"`
	AuthorEmail  string          `json:"authorEmail,omitempty"`
	Rating       int             `json:"rating"`
	Title        string          `json:"title,omitempty"`
	Comment      string          `json:"comment"`
	LocalComment string          `json:"localComment,omitempty"`
	Date         string          `json:"date"`
	Helpful      int             `json:"helpful"`
	Photos       []string        `json:"photos,omitempty"`
	Verified     bool            `json:"verified"`
	Response     *ReviewResponse `json:"response,omitempty"`
}

// AverageReviewRating computes the mean of the given review ratings,
// rounded to one decimal place. Returns 0 for an empty slice.
func AverageReviewRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return float64(int(avg*10+0.5)) / 10
}
