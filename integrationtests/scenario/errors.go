package scenario

import "fmt"

// UnknownScenarioError is returned when the requested scenario name is not registered.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario: %s", e.Name)
}

// APIError is a non-2xx answer from the orchestrator or the fake engine.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
