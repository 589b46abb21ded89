package requestctx

import "context"

type ctxKey string

const (
	requestIDKey  ctxKey = "request_id"
	employeeIDKey ctxKey = "employee_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, employeeIDKey, employeeID)
}

func GetEmployeeID(ctx context.Context) string {
	if value, ok := ctx.Value(employeeIDKey).(string); ok {
		return value
	}
	return ""
}
