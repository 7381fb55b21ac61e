package response

type TranslationResponse struct {
	TranslatedText string `json:"translatedText"`
	OriginalText   string `json:"originalText"`
	LanguageCode   string `json:"languageCode"`
}
