package dto

type CreateContentRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ContentType string   `json:"contentType"`
	ContentURL  string   `json:"contentUrl"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
}

type UpdateContentRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ContentType *string   `json:"contentType"`
	ContentURL  *string   `json:"contentUrl"`
	Thumbnail   *string   `json:"thumbnail"`
	Tags        *[]string `json:"tags"`
}
