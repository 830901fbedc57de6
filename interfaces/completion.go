package interfaces

import "mysessions/domain"

// CompletionNotifier is told about run-to-completion points of an instance
// (credentials persisted, queue drained). What it does with them is deployment policy.
//
//go:generate moq -stub -out mock/completion.go -pkg mock . CompletionNotifier
type CompletionNotifier interface {
	Notify(completion domain.Completion)
}
