package shared

import "context"

type subjectContextKey struct{}

// ContextWithSubject stores the authenticated login handle in context.
func ContextWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey{}, subject)
}

// SubjectFromContext extracts the authenticated login handle from context.
// Returns the empty string for unauthenticated requests.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectContextKey{}).(string)
	return subject
}
