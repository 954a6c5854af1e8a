package template

type TemplateRequest struct {
	Title   string `json:"title" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}
