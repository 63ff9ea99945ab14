package dto

type SaveContentRequest struct {
	ContentID   string `json:"contentId"`
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ContentURL  string `json:"contentUrl"`
	Author      string `json:"author"`
}

// ReportContentRequest reports a feed item by external id and platform.
type ReportContentRequest struct {
	ContentID string `json:"contentId"`
	Platform  string `json:"platform"`
	Reason    string `json:"reason"`
	Details   string `json:"details"`
}

// ReportInternalRequest reports an ingested Content row; the platform is
// forced to "internal" server-side.
type ReportInternalRequest struct {
	ContentID string `json:"contentId"`
	Reason    string `json:"reason"`
	Details   string `json:"details"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status"`
}
