package gemini

import (
	"mockmate/interview/internal/oracle"
	"mockmate/interview/internal/prompts"
)

// Register Gemini provider on package import
func init() {
	oracle.RegisterProvider("gemini", func() (oracle.Provider, error) {
		config, err := NewConfig()
		if err != nil {
			return nil, err
		}
		promptManager, err := prompts.NewPromptManager()
		if err != nil {
			return nil, err
		}
		return NewClient(config, promptManager)
	})
}
