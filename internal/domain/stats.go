package domain

// DirectoryStats are aggregate figures across the whole snapshot.
// AverageRating is 0 when there are no businesses.
type DirectoryStats struct {
	TotalBusinesses          int     `json:"totalBusinesses"`
	TotalCategories          int     `json:"totalCategories"`
	TotalSuburbs             int     `json:"totalSuburbs"`
	VerifiedBusinesses       int     `json:"verifiedBusinesses"`
	CommunityOwnedBusinesses int     `json:"communityOwnedBusinesses"`
	AverageRating            float64 `json:"averageRating"`
}
