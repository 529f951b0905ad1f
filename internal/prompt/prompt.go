// Package prompt builds the tone prompts sent upstream for each mode.
package prompt

import (
	"fmt"
	"strings"

	"github.com/arthUFO12/CivicProject/internal/model"
)

// RewriteTrigger is the text that asks for a block to be rewritten.
const RewriteTrigger = "/rewrite"

const (
	happyQuote = "Respond with a random quote that has a happy and upbeat sentiment inside of quotation marks. If you didn't make the quote yourself and know the speaker or author, please leave a dash followed by their name at the end of the quote."
	sadQuote   = "Respond with a random quote that has a sad and melancholy sentiment inside of quotation marks. If you didn't make the quote yourself and know the speaker or author, please leave a dash followed by their name at the end of the quote."

	// Structured quotes carry quotation marks and attribution as separate fields.
	structuredQuoteFmt = "Respond with a random quote that has a %s sentiment. Put the quote text without surrounding quotation marks in quote. If you didn't make the quote yourself and know the speaker or author, put their name in author, otherwise leave author empty."
)

// Rewrite asks for text to be rewritten in the mode's tone.
func Rewrite(mode model.Mode, text string) string {
	if mode == model.ModeSad {
		return fmt.Sprintf("Rewrite the following text in a sad and negative tone. Do not include quotation marks.:\n\"%s\"", text)
	}
	return fmt.Sprintf("Rewrite the following text in a happy and positive tone. Do not include quotation marks.:\n\"%s\"", text)
}

// Quote asks for a random quote in the mode's tone.
func Quote(mode model.Mode) string {
	if mode == model.ModeSad {
		return sadQuote
	}
	return happyQuote
}

// StructuredQuote is the quote prompt used with a JSON schema response.
func StructuredQuote(mode model.Mode) string {
	if mode == model.ModeSad {
		return fmt.Sprintf(structuredQuoteFmt, "sad and melancholy")
	}
	return fmt.Sprintf(structuredQuoteFmt, "happy and upbeat")
}

// CleanRewriteInput removes every rewrite trigger and surrounding whitespace.
func CleanRewriteInput(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, RewriteTrigger, ""))
}
