package service

import "errors"

var (
	// ErrGenerationUnavailable indicates the LLM provider could not be
	// reached or returned an error; no partial result is available.
	ErrGenerationUnavailable = errors.New("question generation unavailable")

	// ErrGenerationParse indicates the provider responded but the payload
	// was not the expected JSON question document.
	ErrGenerationParse = errors.New("generation response could not be parsed")

	// ErrNoQuestionsAvailable indicates neither the previous-year pool nor
	// generation produced a single question for the requested topic.
	ErrNoQuestionsAvailable = errors.New("no questions available for topic")

	// ErrTestAlreadySubmitted indicates a second submission for a test that
	// has already been scored.
	ErrTestAlreadySubmitted = errors.New("test already submitted")

	// ErrTestAccessDenied indicates the test belongs to a different user.
	ErrTestAccessDenied = errors.New("test does not belong to user")

	// ErrSessionAccessDenied indicates the study session belongs to a
	// different user.
	ErrSessionAccessDenied = errors.New("study session does not belong to user")

	// ErrSessionAlreadyEnded indicates an attempt to end a study session
	// that is no longer active.
	ErrSessionAlreadyEnded = errors.New("study session already ended")
)
