package usecase

// strPtr returns a pointer to s, for the nullable error field of the envelope.
func strPtr(s string) *string {
	return &s
}
