package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"fitarena/internal/version"
	"fitarena/internal/xhttp"
)

const keyError = "error"

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Collection(name string) slog.Attr {
	const collectionKey = "collection"
	return slog.String(collectionKey, name)
}

func Driver(name string) slog.Attr {
	const driverKey = "driver"
	return slog.String(driverKey, name)
}

func Date(date string) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, date)
}

func XP(xp int) slog.Attr {
	const xpKey = "xp"
	return slog.Int(xpKey, xp)
}
