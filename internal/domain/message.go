package domain

import "fmt"

// MessageKey identifies one catalog entry.
type MessageKey string

const (
	KeyStart     MessageKey = "start"
	KeyAskAmount MessageKey = "ask_amount"
	KeyResult    MessageKey = "result"

	// Keys used by the bot adapters around the calculator.
	KeyAmountLabel   MessageKey = "amount_label"
	KeyInvalidAmount MessageKey = "invalid_amount"
	KeyInternalError MessageKey = "internal_error"
)

var messageKeys = []MessageKey{
	KeyStart,
	KeyAskAmount,
	KeyResult,
	KeyAmountLabel,
	KeyInvalidAmount,
	KeyInternalError,
}

// MessageKeys returns every key a catalog language must define.
func MessageKeys() []MessageKey {
	out := make([]MessageKey, len(messageKeys))
	copy(out, messageKeys)
	return out
}

func (k MessageKey) String() string { return string(k) }

// ParseMessageKey accepts exactly one of the defined keys.
func ParseMessageKey(key string) (MessageKey, error) {
	k := MessageKey(key)
	for _, known := range messageKeys {
		if k == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMessage, key)
}
