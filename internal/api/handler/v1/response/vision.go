package response

type VisionResponse struct {
	Description string `json:"description"`
}
