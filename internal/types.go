package internal

// TranslationRequest is one call's input. It lives for a single call.
type TranslationRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// TranslationResult holds the text extracted from the first upstream candidate.
type TranslationResult struct {
	Text           string `json:"translatedText"`
	TargetLanguage string `json:"targetLanguage"`
}
