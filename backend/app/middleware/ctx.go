package middleware

import "context"

type ctxKey int

const sessionKey ctxKey = 1

type sessionInfo struct {
	id     string
	userID uint
}

func WithSession(ctx context.Context, sid string, userID uint) context.Context {
	return context.WithValue(ctx, sessionKey, sessionInfo{id: sid, userID: userID})
}

// GetSession returns the session resolved by RequireSession.
func GetSession(ctx context.Context) (sid string, userID uint, ok bool) {
	if v, found := ctx.Value(sessionKey).(sessionInfo); found {
		return v.id, v.userID, true
	}
	return "", 0, false
}
