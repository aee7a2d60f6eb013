package sl

import (
	"log/slog"
)

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Secret logs value under key with everything past the first 3 runes masked
func Secret(key, value string) slog.Attr {
	r := []rune(value)
	masked := "***"
	switch {
	case len(r) == 0:
		masked = "?"
	case len(r) > 6:
		masked = string(r[:3]) + "***"
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(masked),
	}
}

func Module(mod string) slog.Attr {
	return slog.Attr{
		Key:   "mod",
		Value: slog.StringValue(mod),
	}
}
