package translation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// SourceLanguage is fixed: review content is stored in English.
const SourceLanguage = "en"

// TranslateAPI is the subset of the Translate client the adapter uses.
type TranslateAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// Translator translates review content into a caller-supplied target
// language. Failures surface verbatim; there is no fallback or caching.
type Translator struct {
	client TranslateAPI
}

func NewTranslator(client TranslateAPI) *Translator {
	return &Translator{client: client}
}

// InitTranslate builds the Translate client once at process start.
func InitTranslate(ctx context.Context, region string) (TranslateAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return translate.NewFromConfig(cfg), nil
}

// Translate returns text translated from the fixed source language into
// targetLang. targetLang is passed through unvalidated; the service rejects
// codes it does not support.
func (t *Translator) Translate(ctx context.Context, targetLang, text string) (string, error) {
	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		SourceLanguageCode: aws.String(SourceLanguage),
		TargetLanguageCode: aws.String(targetLang),
		Text:               aws.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("translate text to %s: %w", targetLang, err)
	}

	return aws.ToString(out.TranslatedText), nil
}
