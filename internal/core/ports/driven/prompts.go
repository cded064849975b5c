package driven

// Prompt names used with PromptStore.
const (
	// PromptAnswer grounds the model in assembled document context.
	// Takes two %s placeholders: context and question.
	PromptAnswer = "answer"
)

// PromptStore loads LLM prompt templates.
// Implementations may serve user-editable files with embedded fallbacks.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads.
	Reload()
}
