package dto

type SynthesizeRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice"`
	Format string `json:"format"`
}

type SynthesizeResponse struct {
	Message string `json:"message"`
	Url     string `json:"url"`
}

type Voice struct {
	Provider string `json:"provider"`
	Voice    string `json:"voice"`
	Language string `json:"language"`
}
